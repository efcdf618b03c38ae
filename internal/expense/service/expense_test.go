package service

import (
	"context"
	"math"
	"testing"

	"github.com/aussiebroadwan/spendtrack/internal/expense/domain"
	"github.com/aussiebroadwan/spendtrack/internal/expense/store"
	"github.com/aussiebroadwan/spendtrack/internal/expense/store/drivers/sqlite"
	"github.com/aussiebroadwan/spendtrack/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedUser(t *testing.T, s store.Store, username string) domain.User {
	t.Helper()

	ctx := context.Background()
	u := domain.User{
		ID:            idx.New().String(),
		Username:      username,
		PreferredName: username,
		PasswordHash:  "hash",
	}
	require.NoError(t, s.Users().CreateUser(ctx, u))

	created, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	return created
}

func TestCreateExpenseAdjustsTotal(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &ExpenseService{Store: s}

	alice := seedUser(t, s, "alice")

	first, err := svc.CreateExpense(ctx, alice.ID, 12.50, "lunch", "food")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	require.Equal(t, alice.ID, first.UserID)
	require.InDelta(t, 12.50, first.Amount, 1e-9)

	_, err = svc.CreateExpense(ctx, alice.ID, 7.25, "bus", "transport")
	require.NoError(t, err)

	u, err := s.Users().GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.InDelta(t, 19.75, u.TotalExpenses, 1e-9)

	// The cached total must match the sum over live expense rows.
	sum, err := s.Expenses().SumAmountByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.InDelta(t, u.TotalExpenses, sum, 1e-9)
}

func TestCreateExpenseUnknownUserRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &ExpenseService{Store: s}

	_, err := svc.CreateExpense(ctx, idx.New().String(), 5, "ghost", "misc")
	require.ErrorIs(t, err, ErrUserNotFound)

	all, err := s.Expenses().ListExpenses(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestCreateExpenseRejectsInvalidAmounts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &ExpenseService{Store: s}

	alice := seedUser(t, s, "alice")

	for _, amount := range []float64{0, -3.50, math.NaN(), math.Inf(1)} {
		_, err := svc.CreateExpense(ctx, alice.ID, amount, "bad", "misc")
		require.ErrorIs(t, err, ErrValidation)
	}

	u, err := s.Users().GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Zero(t, u.TotalExpenses)
}

func TestUpdateExpenseAdjustsTotalByDelta(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &ExpenseService{Store: s}

	alice := seedUser(t, s, "alice")

	exp, err := svc.CreateExpense(ctx, alice.ID, 20, "dinner", "food")
	require.NoError(t, err)

	t.Run("amount change shifts the cached total", func(t *testing.T) {
		newAmount := 35.0
		updated, err := svc.UpdateExpense(ctx, exp.ID, domain.ExpensePatch{Amount: &newAmount})
		require.NoError(t, err)
		require.InDelta(t, 35, updated.Amount, 1e-9)

		u, err := s.Users().GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.InDelta(t, 35, u.TotalExpenses, 1e-9)
	})

	t.Run("description-only patch leaves amount and total alone", func(t *testing.T) {
		desc := "team dinner"
		updated, err := svc.UpdateExpense(ctx, exp.ID, domain.ExpensePatch{Description: &desc})
		require.NoError(t, err)
		require.Equal(t, "team dinner", updated.Description)
		require.InDelta(t, 35, updated.Amount, 1e-9)

		u, err := s.Users().GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.InDelta(t, 35, u.TotalExpenses, 1e-9)
	})

	t.Run("missing expense is reported", func(t *testing.T) {
		amount := 1.0
		_, err := svc.UpdateExpense(ctx, idx.New().String(), domain.ExpensePatch{Amount: &amount})
		require.ErrorIs(t, err, ErrExpenseNotFound)
	})

	t.Run("invalid amount rejected before touching rows", func(t *testing.T) {
		amount := -2.0
		_, err := svc.UpdateExpense(ctx, exp.ID, domain.ExpensePatch{Amount: &amount})
		require.ErrorIs(t, err, ErrValidation)

		u, err := s.Users().GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.InDelta(t, 35, u.TotalExpenses, 1e-9)
	})
}

func TestDeleteExpenseDecrementsTotal(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &ExpenseService{Store: s}

	alice := seedUser(t, s, "alice")

	keep, err := svc.CreateExpense(ctx, alice.ID, 10, "coffee", "food")
	require.NoError(t, err)
	drop, err := svc.CreateExpense(ctx, alice.ID, 4, "snack", "food")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteExpense(ctx, drop.ID))

	u, err := s.Users().GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.InDelta(t, 10, u.TotalExpenses, 1e-9)

	remaining, err := svc.ListUserExpenses(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, keep.ID, remaining[0].ID)
}

func TestDeleteExpenseMissingLeavesTotalsAlone(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &ExpenseService{Store: s}

	alice := seedUser(t, s, "alice")
	_, err := svc.CreateExpense(ctx, alice.ID, 10, "coffee", "food")
	require.NoError(t, err)

	err = svc.DeleteExpense(ctx, idx.New().String())
	require.ErrorIs(t, err, ErrExpenseNotFound)

	u, err := s.Users().GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.InDelta(t, 10, u.TotalExpenses, 1e-9)
}

func TestListUserExpensesUnknownUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &ExpenseService{Store: s}

	_, err := svc.ListUserExpenses(ctx, idx.New().String())
	require.ErrorIs(t, err, ErrUserNotFound)
}
