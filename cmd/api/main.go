package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"server/internal/adapter/repo"
	"server/internal/directory"
	"server/internal/domain"
	"server/internal/http/handlers"
	"server/internal/http/httpapi"
	"server/internal/infra"
	"server/internal/infra/credentials"
	"server/internal/infra/geoip"
	"server/internal/ledger"
	"server/internal/middleware"
	"server/internal/providers/genai"
	"server/internal/replenish"
	"server/internal/schedule"
	"server/internal/store/memory"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)
	metrics := infra.NewMetrics(prometheus.DefaultRegisterer)

	ctx := context.Background()

	var (
		accounts  domain.AccountRepository
		audit     domain.AuditRepository
		scripts   domain.ScriptRepository
		schedules domain.ScheduleRepository
		creds     *credentials.Store
	)
	if cfg.DemoMode() {
		logger.Info().Msg("DATABASE_URL not set, running in demo mode on the in-memory store")
		store := memory.NewStore()
		if err := memory.SeedDemo(ctx, store); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo data")
		}
		accounts = store.Accounts()
		audit = store.Audit()
		scripts = store.Scripts()
		schedules = store.Schedules()
	} else {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		runner := infra.NewSQLRunner(pool, logger)
		accounts = repo.NewAccountRepository(runner)
		audit = repo.NewAuditRepository(runner)
		scripts = repo.NewScriptRepository(runner)
		schedules = repo.NewScheduleRepository(runner)
		creds = credentials.NewStore(runner)
	}

	sched, err := schedule.New(ctx, schedules)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load cost schedule")
	}

	generator := buildGenerator(ctx, cfg, creds, logger)

	app := &handlers.App{
		Config:    cfg,
		Logger:    logger,
		Ledger:    ledger.New(accounts, audit, logger, metrics),
		Directory: directory.New(accounts, logger, cfg.AdminEmails),
		Schedule:  sched,
		Scripts:   scripts,
		Audit:     audit,
		Generator: generator,
		Metrics:   metrics,
		JWTSecret: cfg.JWTSecret,
	}

	var countryLookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		countryLookup = resolver.CountryCode
	}

	router := httpapi.NewRouter(app, countryLookup)
	server := infra.NewHTTPServer(cfg, router)

	// In demo mode no worker process runs, so the replenishment schedules run
	// in-process instead.
	if cfg.DemoMode() {
		replenisher, err := replenish.New(accounts, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to build replenishment scheduler")
		}
		replenisher.Start()
		defer replenisher.Stop()
	}

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

// buildGenerator picks the generation backend. A configured Gemini key (env,
// or the integration_tokens row when a database is attached) gets the remote
// provider with the static generator as fallback; otherwise everything is
// served statically.
func buildGenerator(ctx context.Context, cfg *infra.Config, creds *credentials.Store, logger infra.Logger) genai.Generator {
	static := genai.NewStatic()

	apiKey := cfg.GeminiAPIKey
	if apiKey == "" && creds != nil {
		lookupCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		stored, err := creds.GeminiAPIKey(lookupCtx)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to load gemini api key from store")
		}
		apiKey = stored
	}
	if apiKey == "" {
		logger.Info().Msg("no gemini api key configured, using the static generator")
		return static
	}

	gemini, err := genai.NewGemini(genai.GeminiOptions{
		APIKey:     apiKey,
		Model:      cfg.GeminiModel,
		ImageModel: cfg.GeminiImageModel,
		BaseURL:    cfg.GeminiBaseURL,
		Fallback:   static,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to build gemini client, using the static generator")
		return static
	}
	return gemini
}
