package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"server/internal/adapter/repo"
	"server/internal/infra"
	"server/internal/replenish"
)

// The worker owns the replenishment cadence: daily pools reset every midnight
// and monthly pools on the first of each month. The API never replenishes on
// its own when a database is attached.
func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv).With().Str("cmd", "worker").Logger()

	if cfg.DemoMode() {
		logger.Fatal().Msg("worker: DATABASE_URL is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: db connection failed")
	}
	defer pool.Close()

	runner := infra.NewSQLRunner(pool, logger)
	accounts := repo.NewAccountRepository(runner)

	scheduler, err := replenish.New(accounts, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: failed to build scheduler")
	}
	scheduler.Start()

	<-ctx.Done()

	// Let in-flight resets finish before exiting.
	<-scheduler.Stop().Done()
	logger.Info().Msg("worker: stopped")
}
