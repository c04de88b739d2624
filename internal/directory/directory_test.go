package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"server/internal/domain"
	"server/internal/store/memory"
)

func newTestDirectory(t *testing.T, adminEmails []string) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return New(store.Accounts(), zerolog.Nop(), adminEmails), store
}

func TestLoginCreatesFreeAccount(t *testing.T) {
	svc, _ := newTestDirectory(t, nil)

	account, err := svc.LoginOrCreate(context.Background(), "Bob Vlogs", "bob@example.com")
	if err != nil {
		t.Fatalf("LoginOrCreate() error = %v", err)
	}
	if account.Plan != domain.PlanFree || account.Role != domain.RoleUser || account.Status != domain.StatusActive {
		t.Fatalf("account = %+v", account)
	}
	want := domain.CreditPool{Daily: 5, MaxDaily: 5, Monthly: 50, MaxMonthly: 50}
	if account.Credits != want {
		t.Fatalf("credits = %+v, want %+v", account.Credits, want)
	}
	if account.JoinedAt.IsZero() {
		t.Fatal("JoinedAt not set")
	}
}

func TestLoginReturnsExistingUnchanged(t *testing.T) {
	svc, _ := newTestDirectory(t, nil)
	ctx := context.Background()

	created, err := svc.LoginOrCreate(ctx, "Bob", "bob@example.com")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}

	// Second login with different name and differently-cased email must find
	// the same account and must not edit the profile.
	again, err := svc.LoginOrCreate(ctx, "Robert", "Bob@Example.COM")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if again.ID != created.ID {
		t.Fatalf("got a different account: %s vs %s", again.ID, created.ID)
	}
	if again.Name != "Bob" {
		t.Fatalf("login edited profile name: %q", again.Name)
	}
}

func TestLoginRejectsBlockedAccount(t *testing.T) {
	svc, store := newTestDirectory(t, nil)
	ctx := context.Background()

	created, err := svc.LoginOrCreate(ctx, "Bob", "bob@example.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.SetBlocked(ctx, created.ID, true); err != nil {
		t.Fatalf("block: %v", err)
	}

	if _, err := svc.LoginOrCreate(ctx, "Bob", "bob@example.com"); !errors.Is(err, domain.ErrAccountBlocked) {
		t.Fatalf("login error = %v, want ErrAccountBlocked", err)
	}

	// The blocked account itself must be left untouched.
	after, err := store.Accounts().GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if after.Status != domain.StatusBlocked || after.Credits != created.Credits {
		t.Fatalf("blocked account mutated: %+v", after)
	}
}

func TestAdminAllowlist(t *testing.T) {
	svc, _ := newTestDirectory(t, []string{"ops@studio.dev"})
	ctx := context.Background()

	admin, err := svc.LoginOrCreate(ctx, "Ops", "OPS@studio.dev")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("role = %s, want ADMIN", admin.Role)
	}
	if admin.Credits.MaxDaily != 999 || admin.Credits.MaxMonthly != 9999 {
		t.Fatalf("admin ceilings = %+v", admin.Credits)
	}

	// With an allowlist configured, the substring heuristic no longer applies.
	user, err := svc.LoginOrCreate(ctx, "Imposter", "admin-fan@example.com")
	if err != nil {
		t.Fatalf("user login: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("substring heuristic applied despite allowlist: %s", user.Role)
	}
}

func TestAdminHeuristicFallback(t *testing.T) {
	svc, store := newTestDirectory(t, nil)

	admin, err := svc.LoginOrCreate(context.Background(), "Root", "admin@example.com")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("role = %s, want ADMIN via demo heuristic", admin.Role)
	}

	// Admins persist in the directory like everyone else.
	if _, err := store.Accounts().GetByID(context.Background(), admin.ID); err != nil {
		t.Fatalf("admin not persisted: %v", err)
	}
}

func TestToggleBlocked(t *testing.T) {
	svc, _ := newTestDirectory(t, nil)
	ctx := context.Background()

	created, _ := svc.LoginOrCreate(ctx, "Bob", "bob@example.com")

	blocked, err := svc.ToggleBlocked(ctx, created.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if blocked.Status != domain.StatusBlocked {
		t.Fatalf("status = %s, want BLOCKED", blocked.Status)
	}
	if blocked.Credits != created.Credits {
		t.Fatalf("blocking changed balances: %+v", blocked.Credits)
	}

	active, err := svc.ToggleBlocked(ctx, created.ID)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if active.Status != domain.StatusActive {
		t.Fatalf("status = %s, want ACTIVE", active.Status)
	}
}

func TestFindByEmailCaseInsensitive(t *testing.T) {
	svc, _ := newTestDirectory(t, nil)
	ctx := context.Background()
	created, _ := svc.LoginOrCreate(ctx, "Bob", "bob@example.com")

	found, err := svc.FindByEmail(ctx, "BOB@EXAMPLE.COM")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("found %s, want %s", found.ID, created.ID)
	}
}
