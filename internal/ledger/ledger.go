// Package ledger implements the credit metering model: two independent pools
// per account (daily, monthly) with an exclusive fallback policy, admin
// exemption, administrative overrides, and an append-only audit trail.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"server/internal/domain"
	"server/internal/infra"
)

// Service owns atomic consume/reset/grant operations on account credit pools.
type Service struct {
	accounts domain.AccountRepository
	audit    domain.AuditRepository
	logger   infra.Logger
	metrics  *infra.Metrics
	locks    *accountLocks
	now      func() time.Time
}

// New wires a ledger over the given stores. metrics may be nil.
func New(accounts domain.AccountRepository, audit domain.AuditRepository, logger infra.Logger, metrics *infra.Metrics) *Service {
	return &Service{
		accounts: accounts,
		audit:    audit,
		logger:   logger,
		metrics:  metrics,
		locks:    newAccountLocks(),
		now:      time.Now,
	}
}

// ConsumeRequest describes one metered attempt. Cost must already be resolved
// from the cost schedule by the caller.
type ConsumeRequest struct {
	AccountID string
	Feature   domain.Feature
	Action    string
	Cost      int
	Country   string
}

// Consume deducts the full cost from a single pool, daily first. Costs are
// never split across pools: an attempt that neither pool alone can cover fails
// without touching either balance, even when the combined balance would
// suffice. Admin accounts always succeed and consume nothing. Every call,
// including failures and the admin path, appends exactly one audit entry.
func (s *Service) Consume(ctx context.Context, req ConsumeRequest) (*domain.Account, error) {
	if req.Cost < 0 {
		return nil, fmt.Errorf("consume: negative cost %d", req.Cost)
	}

	lock := s.locks.get(req.AccountID)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.accounts.GetByID(ctx, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("consume: load account: %w", err)
	}

	if account.IsAdmin() {
		s.record(ctx, account, req, domain.AuditSuccess)
		s.count(req.Feature, domain.AuditSuccess, 0)
		return account, nil
	}

	credits := account.Credits
	switch {
	case credits.Daily >= req.Cost:
		credits.Daily -= req.Cost
	case credits.Monthly >= req.Cost:
		credits.Monthly -= req.Cost
	default:
		s.record(ctx, account, req, domain.AuditFailed)
		s.count(req.Feature, domain.AuditFailed, 0)
		return nil, &domain.InsufficientCreditsError{
			Daily:   credits.Daily,
			Monthly: credits.Monthly,
			Needed:  req.Cost,
		}
	}

	if !credits.Valid() {
		// Should be unreachable given the checks above; reject rather than
		// commit a pool that violates its ceiling.
		return nil, fmt.Errorf("consume: pool invariant violated for account %s", account.ID)
	}

	account.Credits = credits
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("consume: persist balances: %w", err)
	}
	s.record(ctx, account, req, domain.AuditSuccess)
	s.count(req.Feature, domain.AuditSuccess, req.Cost)
	return account, nil
}

// ResetToMax restores both balances to their ceilings. Administrative action,
// idempotent, not part of the consumption audit trail.
func (s *Service) ResetToMax(ctx context.Context, accountID string) (*domain.Account, error) {
	lock := s.locks.get(accountID)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("reset credits: load account: %w", err)
	}
	account.Credits = account.Credits.Full()
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("reset credits: persist balances: %w", err)
	}
	s.logger.Info().Str("account_id", accountID).Msg("credits reset to ceilings")
	return account, nil
}

// ApplyPlanChange moves the account to a new tier and hard-resets balances and
// ceilings to the tier's canonical values. Partially consumed credits under
// the old plan do not carry over.
func (s *Service) ApplyPlanChange(ctx context.Context, accountID string, newPlan domain.Plan) (*domain.Account, error) {
	limits, ok := domain.PlanCatalog[newPlan]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedPlan, newPlan)
	}

	lock := s.locks.get(accountID)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("plan change: load account: %w", err)
	}
	account.Plan = newPlan
	account.Credits = limits.Grant()
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("plan change: persist account: %w", err)
	}
	s.logger.Info().Str("account_id", accountID).Str("plan", string(newPlan)).Msg("plan changed")
	return account, nil
}

// History returns the account's consumption attempts, newest first.
func (s *Service) History(ctx context.Context, accountID string, limit int) ([]domain.AuditEntry, error) {
	return s.audit.ListByUser(ctx, accountID, limit)
}

func (s *Service) record(ctx context.Context, account *domain.Account, req ConsumeRequest, status domain.AuditStatus) {
	entry := &domain.AuditEntry{
		ID:        uuid.NewString(),
		UserID:    account.ID,
		UserName:  account.Name,
		Action:    req.Action,
		Cost:      req.Cost,
		Timestamp: s.now(),
		Status:    status,
		Country:   req.Country,
	}
	if err := s.audit.Append(ctx, entry); err != nil {
		s.logger.Error().Err(err).Str("account_id", account.ID).Msg("append audit entry failed")
	}
}

func (s *Service) count(feature domain.Feature, status domain.AuditStatus, spent int) {
	if s.metrics == nil {
		return
	}
	s.metrics.ConsumeAttempts.WithLabelValues(string(feature), string(status)).Inc()
	if spent > 0 {
		s.metrics.CreditsSpent.Add(float64(spent))
	}
}
