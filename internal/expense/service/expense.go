package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"

	"github.com/aussiebroadwan/spendtrack/internal/expense/domain"
	"github.com/aussiebroadwan/spendtrack/internal/expense/store"
	"github.com/aussiebroadwan/spendtrack/pkg/idx"
	"github.com/aussiebroadwan/spendtrack/pkg/slogx"
)

var (
	ErrValidation      = errors.New("validation_failed")
	ErrUserNotFound    = errors.New("user_not_found")
	ErrExpenseNotFound = errors.New("expense_not_found")
)

type ExpenseService struct {
	Store store.Store
}

// CreateExpense records a new expense for the given user and adjusts the
// owner's cached total in the same transaction. Either both rows change or
// neither does.
func (s *ExpenseService) CreateExpense(
	ctx context.Context,
	userID string,
	amount float64,
	description, category string,
) (domain.Expense, error) {
	l := slogx.FromContext(ctx)

	if err := validateAmount(amount); err != nil {
		return domain.Expense{}, err
	}
	description = strings.TrimSpace(description)
	category = strings.TrimSpace(category)

	exp := domain.Expense{
		ID:          idx.New().String(),
		UserID:      userID,
		Amount:      amount,
		Description: description,
		Category:    category,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByID(ctx, userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if err := tx.Expenses().CreateExpense(ctx, exp); err != nil {
			return err
		}
		if err := tx.Users().AdjustTotalBy(ctx, userID, amount); err != nil {
			return err
		}

		// Re-read to pick up database-assigned timestamps.
		var err error
		exp, err = tx.Expenses().GetExpenseByID(ctx, exp.ID)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			l.Error("failed to create expense",
				slog.Any("error", err),
				slog.String("user_id", userID),
			)
		}
		return domain.Expense{}, err
	}

	return exp, nil
}

// ListExpenses returns every recorded expense.
func (s *ExpenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	return s.Store.Expenses().ListExpenses(ctx)
}

// ListUserExpenses returns the expenses owned by a single user.
func (s *ExpenseService) ListUserExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.Store.Expenses().ListExpensesByUser(ctx, userID)
}

// UpdateExpense applies a partial update to an expense. When the amount
// changes, the owner's cached total is adjusted by the difference inside the
// same transaction so the aggregate never drifts from the expense rows.
func (s *ExpenseService) UpdateExpense(
	ctx context.Context,
	expenseID string,
	patch domain.ExpensePatch,
) (domain.Expense, error) {
	if patch.Amount != nil {
		if err := validateAmount(*patch.Amount); err != nil {
			return domain.Expense{}, err
		}
	}
	if patch.Description != nil {
		trimmed := strings.TrimSpace(*patch.Description)
		patch.Description = &trimmed
	}
	if patch.Category != nil {
		trimmed := strings.TrimSpace(*patch.Category)
		patch.Category = &trimmed
	}

	var updated domain.Expense

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Expenses().GetExpenseByID(ctx, expenseID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrExpenseNotFound
			}
			return err
		}

		if err := tx.Expenses().UpdateExpense(ctx, expenseID, patch); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrExpenseNotFound
			}
			return err
		}

		if patch.Amount != nil {
			delta := *patch.Amount - current.Amount
			if delta != 0 {
				if err := tx.Users().AdjustTotalBy(ctx, current.UserID, delta); err != nil {
					return err
				}
			}
		}

		updated, err = tx.Expenses().GetExpenseByID(ctx, expenseID)
		return err
	})
	if err != nil {
		return domain.Expense{}, err
	}

	return updated, nil
}

// DeleteExpense removes an expense and decrements the owner's cached total
// atomically. A missing expense leaves every total untouched.
func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		exp, err := tx.Expenses().GetExpenseByID(ctx, expenseID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrExpenseNotFound
			}
			return err
		}

		if err := tx.Expenses().DeleteExpense(ctx, expenseID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrExpenseNotFound
			}
			return err
		}

		return tx.Users().AdjustTotalBy(ctx, exp.UserID, -exp.Amount)
	})
}

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrValidation
	}
	if amount <= 0 {
		return ErrValidation
	}
	return nil
}
