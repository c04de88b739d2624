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

// ScriptRepositoryPG persists saved script projects on PostgreSQL. Sections,
// hashtags and analytics live in jsonb columns; their shape belongs to the
// domain, not the schema.
type ScriptRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewScriptRepository creates a new ScriptRepositoryPG.
func NewScriptRepository(sql infra.SQLExecutor) *ScriptRepositoryPG {
	return &ScriptRepositoryPG{sql: sql}
}

func (r *ScriptRepositoryPG) Save(ctx context.Context, project *domain.ScriptProject) error {
	sections, err := json.Marshal(project.Sections)
	if err != nil {
		return fmt.Errorf("encode sections: %w", err)
	}
	hashtags, err := json.Marshal(project.Hashtags)
	if err != nil {
		return fmt.Errorf("encode hashtags: %w", err)
	}
	analytics, err := json.Marshal(project.Analytics)
	if err != nil {
		return fmt.Errorf("encode analytics: %w", err)
	}
	_, err = r.sql.Exec(ctx, sqlinline.QUpsertScript,
		project.ID,
		project.UserID,
		project.Title,
		project.Platform,
		project.Description,
		sections,
		hashtags,
		project.ThumbnailSuggestion,
		project.ThumbnailURL,
		analytics,
		project.CreatedAt,
		project.LastModified,
	)
	return err
}

func (r *ScriptRepositoryPG) GetByID(ctx context.Context, userID, id string) (*domain.ScriptProject, error) {
	project, err := scanScript(r.sql.QueryRow(ctx, sqlinline.QSelectScript, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

func (r *ScriptRepositoryPG) ListByUser(ctx context.Context, userID string) ([]domain.ScriptProject, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListScriptsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ScriptProject
	for rows.Next() {
		project, err := scanScript(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *project)
	}
	return out, rows.Err()
}

func (r *ScriptRepositoryPG) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteScript, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanScript(row pgx.Row) (*domain.ScriptProject, error) {
	var p domain.ScriptProject
	var sections, hashtags, analytics []byte
	if err := row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Platform, &p.Description,
		&sections, &hashtags, &p.ThumbnailSuggestion, &p.ThumbnailURL, &analytics,
		&p.CreatedAt, &p.LastModified,
	); err != nil {
		return nil, err
	}
	if len(sections) > 0 {
		if err := json.Unmarshal(sections, &p.Sections); err != nil {
			return nil, fmt.Errorf("decode sections: %w", err)
		}
	}
	if len(hashtags) > 0 {
		if err := json.Unmarshal(hashtags, &p.Hashtags); err != nil {
			return nil, fmt.Errorf("decode hashtags: %w", err)
		}
	}
	if len(analytics) > 0 {
		if err := json.Unmarshal(analytics, &p.Analytics); err != nil {
			return nil, fmt.Errorf("decode analytics: %w", err)
		}
	}
	return &p, nil
}

var _ domain.ScriptRepository = (*ScriptRepositoryPG)(nil)
