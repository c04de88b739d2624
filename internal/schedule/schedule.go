// Package schedule owns the mapping from feature to credit cost. The schedule
// is replaced atomically by administrators and read on every metered action.
package schedule

import (
	"context"
	"fmt"
	"sync"

	"server/internal/domain"
)

// Service guards the active cost schedule. Reads vastly outnumber writes, so a
// RWMutex with full-copy reads keeps consumers free of aliasing bugs.
type Service struct {
	mu     sync.RWMutex
	active domain.CostSchedule
	repo   domain.ScheduleRepository
}

// New creates a schedule service starting from the default costs. When repo is
// non-nil a previously stored schedule takes precedence over the defaults.
func New(ctx context.Context, repo domain.ScheduleRepository) (*Service, error) {
	s := &Service{active: domain.DefaultCostSchedule(), repo: repo}
	if repo != nil {
		stored, err := repo.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load cost schedule: %w", err)
		}
		if stored != nil {
			if err := stored.Validate(); err != nil {
				return nil, fmt.Errorf("stored cost schedule: %w", err)
			}
			s.active = stored.Clone()
		}
	}
	return s, nil
}

// Cost returns the credit cost of a feature. An unknown feature is a
// configuration bug, never a zero-cost action.
func (s *Service) Cost(feature domain.Feature) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cost, ok := s.active[feature]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownFeature, feature)
	}
	return cost, nil
}

// Active returns a copy of the current schedule.
func (s *Service) Active() domain.CostSchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active.Clone()
}

// Update replaces the whole schedule. The update is committed only when every
// feature key is present with a non-negative cost; otherwise the previous
// schedule stays in effect untouched.
func (s *Service) Update(ctx context.Context, next domain.CostSchedule) error {
	if err := next.Validate(); err != nil {
		return err
	}
	committed := next.Clone()
	if s.repo != nil {
		if err := s.repo.Store(ctx, committed); err != nil {
			return fmt.Errorf("store cost schedule: %w", err)
		}
	}
	s.mu.Lock()
	s.active = committed
	s.mu.Unlock()
	return nil
}
