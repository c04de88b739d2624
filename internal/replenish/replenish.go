// Package replenish drives the periodic restoration of credit pools. The
// ledger itself never replenishes; cadence is owned by this cron scheduler.
package replenish

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"server/internal/domain"
	"server/internal/infra"
)

const (
	dailySpec   = "0 0 * * *" // every midnight
	monthlySpec = "0 0 1 * *" // first day of the month
)

// Scheduler resets daily pools every midnight and monthly pools on the first
// of each month.
type Scheduler struct {
	cron     *cron.Cron
	accounts domain.AccountRepository
	logger   infra.Logger
	timeout  time.Duration
}

// New builds a scheduler; Start must be called to begin ticking.
func New(accounts domain.AccountRepository, logger infra.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(),
		accounts: accounts,
		logger:   logger,
		timeout:  time.Minute,
	}
	if _, err := s.cron.AddFunc(dailySpec, s.runDaily); err != nil {
		return nil, err
	}
	if _, err := s.cron.AddFunc(monthlySpec, s.runMonthly); err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins the schedules in a background goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info().Str("daily", dailySpec).Str("monthly", monthlySpec).Msg("replenish schedules started")
}

// Stop halts the schedules and returns a context that completes when running
// jobs have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) runDaily() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.accounts.ReplenishDaily(ctx); err != nil {
		s.logger.Error().Err(err).Msg("daily replenish failed")
		return
	}
	s.logger.Info().Msg("daily pools replenished")
}

func (s *Scheduler) runMonthly() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.accounts.ReplenishMonthly(ctx); err != nil {
		s.logger.Error().Err(err).Msg("monthly replenish failed")
		return
	}
	s.logger.Info().Msg("monthly pools replenished")
}
