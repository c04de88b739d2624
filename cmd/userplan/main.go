package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/adapter/repo"
	"server/internal/domain"
	"server/internal/infra"
)

// Operational tool: move an account to another tier, refill its pools, or
// flip its blocked status, directly against the database.
func main() {
	var (
		idFlag    string
		emailFlag string
		planFlag  string
		resetFlag bool
		blockFlag string
	)

	flag.StringVar(&idFlag, "id", "", "account ID to update")
	flag.StringVar(&emailFlag, "email", "", "account email to update")
	flag.StringVar(&planFlag, "plan", "", "plan to assign (FREE, PRO, PREMIUM); pools hard-reset to the tier ceilings")
	flag.BoolVar(&resetFlag, "reset-credits", false, "restore both pools to their ceilings")
	flag.StringVar(&blockFlag, "blocked", "", "set access status (true or false)")
	flag.Parse()

	accountID := strings.TrimSpace(idFlag)
	email := strings.TrimSpace(emailFlag)
	if accountID == "" && email == "" {
		exitWithError(errors.New("either -id or -email must be provided"))
	}
	if planFlag == "" && !resetFlag && blockFlag == "" {
		exitWithError(errors.New("nothing to do: provide -plan, -reset-credits or -blocked"))
	}

	var plan domain.Plan
	if planFlag != "" {
		plan = domain.Plan(strings.ToUpper(strings.TrimSpace(planFlag)))
		if !domain.ValidPlan(plan) {
			exitWithError(fmt.Errorf("unsupported plan %q", planFlag))
		}
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "userplan").Logger()
	accounts := repo.NewAccountRepository(infra.NewSQLRunner(pool, logger))

	var account *domain.Account
	if accountID != "" {
		account, err = accounts.GetByID(ctx, accountID)
	} else {
		account, err = accounts.GetByEmail(ctx, email)
	}
	if err != nil {
		exitWithError(fmt.Errorf("failed to load account: %w", err))
	}

	if plan != "" {
		account.Plan = plan
		account.Credits = domain.PlanCatalog[plan].Grant()
	}
	if resetFlag {
		account.Credits = account.Credits.Full()
	}
	if blockFlag != "" {
		switch strings.ToLower(strings.TrimSpace(blockFlag)) {
		case "true":
			account.Status = domain.StatusBlocked
		case "false":
			account.Status = domain.StatusActive
		default:
			exitWithError(fmt.Errorf("invalid -blocked value %q", blockFlag))
		}
	}

	if err := accounts.Update(ctx, account); err != nil {
		exitWithError(fmt.Errorf("failed to update account: %w", err))
	}

	fmt.Printf("Account %s (%s) updated: plan=%s status=%s daily=%d/%d monthly=%d/%d\n",
		account.ID, account.Email, account.Plan, account.Status,
		account.Credits.Daily, account.Credits.MaxDaily,
		account.Credits.Monthly, account.Credits.MaxMonthly)
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
