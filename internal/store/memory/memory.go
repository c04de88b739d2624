// Package memory implements every repository on process-local state. It backs
// the demo mode the dashboard ships with and doubles as the fixture store in
// tests. All methods are safe for concurrent use.
package memory

import (
	"context"
	"sort"
	"sync"

	"server/internal/domain"
)

// Store holds accounts, audit entries, script projects and the persisted cost
// schedule behind a single mutex. State lives for the lifetime of the process.
// Repository interfaces are exposed through the Accounts/Audit/Scripts/
// Schedules views.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
	byEmail  map[string]string
	audit    []domain.AuditEntry
	scripts  map[string]domain.ScriptProject
	schedule domain.CostSchedule
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[string]domain.Account),
		byEmail:  make(map[string]string),
		scripts:  make(map[string]domain.ScriptProject),
	}
}

// Accounts returns the account repository view.
func (s *Store) Accounts() domain.AccountRepository { return accountView{s} }

// Audit returns the audit log view.
func (s *Store) Audit() domain.AuditRepository { return auditView{s} }

// Scripts returns the script project view.
func (s *Store) Scripts() domain.ScriptRepository { return scriptView{s} }

// Schedules returns the cost schedule view.
func (s *Store) Schedules() domain.ScheduleRepository { return scheduleView{s} }

type accountView struct{ s *Store }

func (v accountView) Create(ctx context.Context, account *domain.Account) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	key := domain.NormalizeEmail(account.Email)
	if _, exists := v.s.byEmail[key]; exists {
		return domain.ErrEmailTaken
	}
	v.s.accounts[account.ID] = *account
	v.s.byEmail[key] = account.ID
	return nil
}

func (v accountView) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	account, ok := v.s.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &account, nil
}

func (v accountView) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	id, ok := v.s.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	account := v.s.accounts[id]
	return &account, nil
}

func (v accountView) Update(ctx context.Context, account *domain.Account) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := v.s.accounts[account.ID]; !ok {
		return domain.ErrNotFound
	}
	v.s.accounts[account.ID] = *account
	return nil
}

func (v accountView) List(ctx context.Context) ([]domain.Account, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	out := make([]domain.Account, 0, len(v.s.accounts))
	for _, account := range v.s.accounts {
		out = append(out, account)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JoinedAt.Before(out[j].JoinedAt) })
	return out, nil
}

func (v accountView) ReplenishDaily(ctx context.Context) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for id, account := range v.s.accounts {
		account.Credits.Daily = account.Credits.MaxDaily
		v.s.accounts[id] = account
	}
	return nil
}

func (v accountView) ReplenishMonthly(ctx context.Context) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for id, account := range v.s.accounts {
		account.Credits.Monthly = account.Credits.MaxMonthly
		v.s.accounts[id] = account
	}
	return nil
}

type auditView struct{ s *Store }

func (v auditView) Append(ctx context.Context, entry *domain.AuditEntry) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	// Prepend: newest entry is always first in storage order.
	v.s.audit = append([]domain.AuditEntry{*entry}, v.s.audit...)
	return nil
}

func (v auditView) ListAll(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return clip(v.s.audit, limit), nil
}

func (v auditView) ListByUser(ctx context.Context, userID string, limit int) ([]domain.AuditEntry, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var out []domain.AuditEntry
	for _, e := range v.s.audit {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return clip(out, limit), nil
}

func clip(entries []domain.AuditEntry, limit int) []domain.AuditEntry {
	out := make([]domain.AuditEntry, len(entries))
	copy(out, entries)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type scriptView struct{ s *Store }

func (v scriptView) Save(ctx context.Context, project *domain.ScriptProject) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.scripts[project.ID] = *project
	return nil
}

func (v scriptView) GetByID(ctx context.Context, userID, id string) (*domain.ScriptProject, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	project, ok := v.s.scripts[id]
	if !ok || project.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return &project, nil
}

func (v scriptView) ListByUser(ctx context.Context, userID string) ([]domain.ScriptProject, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var out []domain.ScriptProject
	for _, p := range v.s.scripts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (v scriptView) Delete(ctx context.Context, userID, id string) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	project, ok := v.s.scripts[id]
	if !ok || project.UserID != userID {
		return domain.ErrNotFound
	}
	delete(v.s.scripts, id)
	return nil
}

type scheduleView struct{ s *Store }

func (v scheduleView) Load(ctx context.Context) (domain.CostSchedule, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if v.s.schedule == nil {
		return nil, nil
	}
	return v.s.schedule.Clone(), nil
}

func (v scheduleView) Store(ctx context.Context, schedule domain.CostSchedule) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.schedule = schedule.Clone()
	return nil
}
