package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// AuditRepositoryPG implements the append-only consumption log on PostgreSQL.
type AuditRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewAuditRepository creates a new AuditRepositoryPG.
func NewAuditRepository(sql infra.SQLExecutor) *AuditRepositoryPG {
	return &AuditRepositoryPG{sql: sql}
}

func (r *AuditRepositoryPG) Append(ctx context.Context, entry *domain.AuditEntry) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertAuditEntry,
		entry.ID,
		entry.UserID,
		entry.UserName,
		entry.Action,
		entry.Cost,
		string(entry.Status),
		entry.Country,
		entry.Timestamp,
	)
	return err
}

func (r *AuditRepositoryPG) ListAll(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListAuditAll, limit)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

func (r *AuditRepositoryPG) ListByUser(ctx context.Context, userID string, limit int) ([]domain.AuditEntry, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListAuditByUser, userID, limit)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]domain.AuditEntry, error) {
	defer rows.Close()
	var out []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var status string
		if err := rows.Scan(&e.ID, &e.UserID, &e.UserName, &e.Action, &e.Cost, &status, &e.Country, &e.Timestamp); err != nil {
			return nil, err
		}
		e.Status = domain.AuditStatus(status)
		out = append(out, e)
	}
	return out, rows.Err()
}

var _ domain.AuditRepository = (*AuditRepositoryPG)(nil)
