package memory

import (
	"context"
	"time"

	"server/internal/domain"
)

// SeedDemo loads the demo accounts and a few historical audit entries so the
// dashboard has data to show on first login.
func SeedDemo(ctx context.Context, store *Store) error {
	now := time.Now()
	accounts := []domain.Account{
		{
			ID: "u1", Name: "Alice Creator", Email: "alice@example.com",
			Plan: domain.PlanPro, Role: domain.RoleUser, Status: domain.StatusActive,
			Credits:  domain.CreditPool{Daily: 45, MaxDaily: 50, Monthly: 800, MaxMonthly: 1000},
			JoinedAt: time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "u2", Name: "Bob Vlogs", Email: "bob@example.com",
			Plan: domain.PlanFree, Role: domain.RoleUser, Status: domain.StatusActive,
			Credits:  domain.CreditPool{Daily: 2, MaxDaily: 5, Monthly: 10, MaxMonthly: 50},
			JoinedAt: time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "u3", Name: "Charlie Agency", Email: "charlie@agency.com",
			Plan: domain.PlanPremium, Role: domain.RoleUser, Status: domain.StatusActive,
			Credits:  domain.CreditPool{Daily: 100, MaxDaily: 100, Monthly: 4500, MaxMonthly: 5000},
			JoinedAt: time.Date(2023, 9, 20, 0, 0, 0, 0, time.UTC),
		},
	}
	repo := store.Accounts()
	for i := range accounts {
		if err := repo.Create(ctx, &accounts[i]); err != nil {
			return err
		}
	}

	entries := []domain.AuditEntry{
		{ID: "l3", UserID: "u3", UserName: "Charlie Agency", Action: "Channel Analysis", Cost: 10, Timestamp: now.Add(-8000 * time.Second), Status: domain.AuditSuccess},
		{ID: "l2", UserID: "u2", UserName: "Bob Vlogs", Action: "Thumbnail Studio", Cost: 3, Timestamp: now.Add(-5000 * time.Second), Status: domain.AuditFailed},
		{ID: "l1", UserID: "u1", UserName: "Alice Creator", Action: "Generate Full Script", Cost: 5, Timestamp: now.Add(-1000 * time.Second), Status: domain.AuditSuccess},
	}
	audit := store.Audit()
	for i := range entries {
		if err := audit.Append(ctx, &entries[i]); err != nil {
			return err
		}
	}
	return nil
}
