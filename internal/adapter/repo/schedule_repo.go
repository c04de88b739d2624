package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// ScheduleRepositoryPG stores the active cost schedule as a singleton jsonb
// row so every process prices features identically.
type ScheduleRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewScheduleRepository creates a new ScheduleRepositoryPG.
func NewScheduleRepository(sql infra.SQLExecutor) *ScheduleRepositoryPG {
	return &ScheduleRepositoryPG{sql: sql}
}

// Load returns the stored schedule, or nil when none has been committed yet.
func (r *ScheduleRepositoryPG) Load(ctx context.Context) (domain.CostSchedule, error) {
	var raw []byte
	if err := r.sql.QueryRow(ctx, sqlinline.QSelectCostSchedule).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	var schedule domain.CostSchedule
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return nil, fmt.Errorf("decode cost schedule: %w", err)
	}
	return schedule, nil
}

func (r *ScheduleRepositoryPG) Store(ctx context.Context, schedule domain.CostSchedule) error {
	raw, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("encode cost schedule: %w", err)
	}
	_, err = r.sql.Exec(ctx, sqlinline.QUpsertCostSchedule, raw)
	return err
}

var _ domain.ScheduleRepository = (*ScheduleRepositoryPG)(nil)
