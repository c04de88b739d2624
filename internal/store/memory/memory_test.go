package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"server/internal/domain"
)

func TestAccountEmailUniqueness(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	repo := store.Accounts()

	first := &domain.Account{ID: "a1", Email: "bob@example.com", JoinedAt: time.Now()}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}
	dup := &domain.Account{ID: "a2", Email: "BOB@example.com", JoinedAt: time.Now()}
	if err := repo.Create(ctx, dup); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("duplicate email error = %v, want ErrEmailTaken", err)
	}

	found, err := repo.GetByEmail(ctx, "Bob@Example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if found.ID != "a1" {
		t.Fatalf("found %s, want a1", found.ID)
	}
}

func TestAuditPrependOrder(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	audit := store.Audit()

	for _, id := range []string{"first", "second", "third"} {
		if err := audit.Append(ctx, &domain.AuditEntry{ID: id, UserID: "u1"}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	entries, err := audit.ListByUser(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"third", "second", "first"}
	for i, id := range want {
		if entries[i].ID != id {
			t.Fatalf("entries[%d] = %s, want %s", i, entries[i].ID, id)
		}
	}

	limited, _ := audit.ListByUser(ctx, "u1", 2)
	if len(limited) != 2 || limited[0].ID != "third" {
		t.Fatalf("limited = %+v", limited)
	}
}

func TestReplenish(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	repo := store.Accounts()

	account := &domain.Account{
		ID: "a1", Email: "bob@example.com",
		Credits: domain.CreditPool{Daily: 1, MaxDaily: 5, Monthly: 10, MaxMonthly: 50},
	}
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.ReplenishDaily(ctx); err != nil {
		t.Fatalf("ReplenishDaily: %v", err)
	}
	after, _ := repo.GetByID(ctx, "a1")
	if after.Credits.Daily != 5 || after.Credits.Monthly != 10 {
		t.Fatalf("after daily replenish: %+v", after.Credits)
	}

	if err := repo.ReplenishMonthly(ctx); err != nil {
		t.Fatalf("ReplenishMonthly: %v", err)
	}
	after, _ = repo.GetByID(ctx, "a1")
	if after.Credits.Monthly != 50 {
		t.Fatalf("after monthly replenish: %+v", after.Credits)
	}
}

func TestScriptLifecycle(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	scripts := store.Scripts()

	project := &domain.ScriptProject{ID: "s1", UserID: "u1", Title: "Hook ideas", CreatedAt: time.Now()}
	if err := scripts.Save(ctx, project); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := scripts.GetByID(ctx, "someone-else", "s1"); err != domain.ErrNotFound {
		t.Fatalf("cross-user read error = %v, want ErrNotFound", err)
	}

	got, err := scripts.GetByID(ctx, "u1", "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Hook ideas" {
		t.Fatalf("title = %q", got.Title)
	}

	if err := scripts.Delete(ctx, "u1", "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := scripts.GetByID(ctx, "u1", "s1"); err != domain.ErrNotFound {
		t.Fatalf("after delete error = %v, want ErrNotFound", err)
	}
}

func TestSeedDemo(t *testing.T) {
	store := NewStore()
	if err := SeedDemo(context.Background(), store); err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}
	bob, err := store.Accounts().GetByEmail(context.Background(), "bob@example.com")
	if err != nil {
		t.Fatalf("bob missing: %v", err)
	}
	if bob.Credits.Daily != 2 || bob.Credits.MaxDaily != 5 {
		t.Fatalf("bob credits = %+v", bob.Credits)
	}
	entries, _ := store.Audit().ListAll(context.Background(), 0)
	if len(entries) != 3 {
		t.Fatalf("seed audit entries = %d, want 3", len(entries))
	}
}
