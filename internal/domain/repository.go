package domain

import "context"

// AccountRepository defines persistence for accounts. Email lookups are
// case-insensitive; email uniqueness is enforced at creation time.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	Update(ctx context.Context, account *Account) error
	List(ctx context.Context) ([]Account, error)
	// ReplenishDaily and ReplenishMonthly restore the respective balance of
	// every account to its ceiling. Driven by the cron worker.
	ReplenishDaily(ctx context.Context) error
	ReplenishMonthly(ctx context.Context) error
}

// AuditRepository is the append-only store of consumption attempts.
// Iteration order is newest first.
type AuditRepository interface {
	Append(ctx context.Context, entry *AuditEntry) error
	ListAll(ctx context.Context, limit int) ([]AuditEntry, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]AuditEntry, error)
}

// ScriptRepository persists saved script projects.
type ScriptRepository interface {
	Save(ctx context.Context, project *ScriptProject) error
	GetByID(ctx context.Context, userID, id string) (*ScriptProject, error)
	ListByUser(ctx context.Context, userID string) ([]ScriptProject, error)
	Delete(ctx context.Context, userID, id string) error
}

// ScheduleRepository persists the active cost schedule so API and worker
// processes observe the same costs.
type ScheduleRepository interface {
	Load(ctx context.Context) (CostSchedule, error)
	Store(ctx context.Context, schedule CostSchedule) error
}
