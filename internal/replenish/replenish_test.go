package replenish

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"server/internal/domain"
	"server/internal/store/memory"
)

func seedAccount(t *testing.T, store *memory.Store, id string, daily, maxDaily, monthly, maxMonthly int) {
	t.Helper()
	err := store.Accounts().Create(context.Background(), &domain.Account{
		ID: id, Name: id, Email: id + "@example.com",
		Plan: domain.PlanFree, Role: domain.RoleUser, Status: domain.StatusActive,
		Credits: domain.CreditPool{Daily: daily, MaxDaily: maxDaily, Monthly: monthly, MaxMonthly: maxMonthly},
	})
	require.NoError(t, err)
}

func TestRunDailyRestoresOnlyDailyPools(t *testing.T) {
	store := memory.NewStore()
	seedAccount(t, store, "a1", 0, 5, 10, 50)
	seedAccount(t, store, "a2", 3, 100, 4500, 5000)

	s, err := New(store.Accounts(), zerolog.Nop())
	require.NoError(t, err)
	s.runDaily()

	a1, err := store.Accounts().GetByID(context.Background(), "a1")
	require.NoError(t, err)
	require.Equal(t, 5, a1.Credits.Daily)
	require.Equal(t, 10, a1.Credits.Monthly, "monthly pool must stay untouched")

	a2, err := store.Accounts().GetByID(context.Background(), "a2")
	require.NoError(t, err)
	require.Equal(t, 100, a2.Credits.Daily)
	require.Equal(t, 4500, a2.Credits.Monthly)
}

func TestRunMonthlyRestoresOnlyMonthlyPools(t *testing.T) {
	store := memory.NewStore()
	seedAccount(t, store, "a1", 2, 5, 10, 50)

	s, err := New(store.Accounts(), zerolog.Nop())
	require.NoError(t, err)
	s.runMonthly()

	a1, err := store.Accounts().GetByID(context.Background(), "a1")
	require.NoError(t, err)
	require.Equal(t, 2, a1.Credits.Daily, "daily pool must stay untouched")
	require.Equal(t, 50, a1.Credits.Monthly)
}

func TestSchedulerStartStop(t *testing.T) {
	store := memory.NewStore()
	s, err := New(store.Accounts(), zerolog.Nop())
	require.NoError(t, err)
	s.Start()
	<-s.Stop().Done()
}
