// Package directory manages the collection of accounts: lookup by email,
// creation on first login, and administrative block/unblock.
package directory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"server/internal/domain"
	"server/internal/infra"
)

// Service implements login-or-create semantics over the account store.
type Service struct {
	accounts    domain.AccountRepository
	logger      infra.Logger
	adminEmails map[string]struct{}
	now         func() time.Time
}

// New builds a directory. adminEmails is the explicit allowlist of accounts
// granted the ADMIN role; when empty the demo heuristic (any email containing
// "admin") applies instead.
func New(accounts domain.AccountRepository, logger infra.Logger, adminEmails []string) *Service {
	allow := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		allow[domain.NormalizeEmail(email)] = struct{}{}
	}
	return &Service{
		accounts:    accounts,
		logger:      logger,
		adminEmails: allow,
		now:         time.Now,
	}
}

// FindByEmail looks up an account by case-insensitive email.
func (s *Service) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return s.accounts.GetByEmail(ctx, email)
}

// Get loads an account by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

// List returns every account, oldest first.
func (s *Service) List(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.List(ctx)
}

// LoginOrCreate authenticates by email. An existing account is returned
// unchanged; login never edits the profile. A blocked account fails with
// ErrAccountBlocked. An unknown email creates a fresh ACTIVE account on the
// FREE tier. Administrators are persisted in the directory like any other
// account.
func (s *Service) LoginOrCreate(ctx context.Context, name, email string) (*domain.Account, error) {
	existing, err := s.accounts.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.IsBlocked() {
			return nil, domain.ErrAccountBlocked
		}
		return existing, nil
	case err != domain.ErrNotFound:
		return nil, fmt.Errorf("login: lookup account: %w", err)
	}

	role := domain.RoleUser
	credits := domain.PlanCatalog[domain.PlanFree].Grant()
	if s.isAdminEmail(email) {
		role = domain.RoleAdmin
		credits = domain.AdminLimits.Grant()
	}

	account := &domain.Account{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(name),
		Email:    domain.NormalizeEmail(email),
		Plan:     domain.PlanFree,
		Role:     role,
		Status:   domain.StatusActive,
		Credits:  credits,
		JoinedAt: s.now(),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("login: create account: %w", err)
	}
	s.logger.Info().Str("account_id", account.ID).Str("role", string(role)).Msg("account created on first login")
	return account, nil
}

// SetBlocked sets the account's access status. Balances are untouched.
func (s *Service) SetBlocked(ctx context.Context, id string, blocked bool) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blocked {
		account.Status = domain.StatusBlocked
	} else {
		account.Status = domain.StatusActive
	}
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("set blocked: %w", err)
	}
	return account, nil
}

// ToggleBlocked flips between ACTIVE and BLOCKED.
func (s *Service) ToggleBlocked(ctx context.Context, id string) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.SetBlocked(ctx, id, !account.IsBlocked())
}

func (s *Service) isAdminEmail(email string) bool {
	normalized := domain.NormalizeEmail(email)
	if len(s.adminEmails) > 0 {
		_, ok := s.adminEmails[normalized]
		return ok
	}
	// Demo fallback, mirrors the reference dashboard's heuristic.
	return strings.Contains(normalized, "admin")
}
