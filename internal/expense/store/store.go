package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/spendtrack/internal/expense/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a transaction primitive for the multi-step writes that must
// land atomically (expense row + owner total).
type Store interface {
	Users() Users
	Expenses() Expenses

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx before
	// the request completes; no unit-of-work may dangle.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle transactions as it automatically
	// handles commit/rollback logic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// AdjustTotalBy applies a relative in-place update to total_expenses.
	// The increment happens inside the database so two concurrent writers
	// cannot lose each other's update. Returns ErrNotFound when no user row
	// matches.
	AdjustTotalBy(ctx context.Context, userID string, delta float64) error

	// ListUsers returns all users ordered by id (export snapshot).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// Leaderboard computes summed expense amounts per user, descending, with
	// id as the stable tiebreak. Users with no expenses appear with total 0.
	Leaderboard(ctx context.Context, limit, offset int) ([]domain.LeaderboardEntry, error)
}

type Expenses interface {
	// GetExpenseByID returns an expense by id.
	GetExpenseByID(ctx context.Context, id string) (domain.Expense, error)

	// ListExpenses returns every expense ordered by id.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)

	// ListExpensesByUser returns the expenses owned by userID ordered by id.
	ListExpensesByUser(ctx context.Context, userID string) ([]domain.Expense, error)

	// CreateExpense inserts a new expense (id is ULID; owner must exist).
	CreateExpense(ctx context.Context, e domain.Expense) error

	// UpdateExpense applies the non-nil fields of patch and bumps updated_at.
	UpdateExpense(ctx context.Context, id string, patch domain.ExpensePatch) error

	// DeleteExpense removes an expense row. Returns ErrNotFound when absent.
	DeleteExpense(ctx context.Context, id string) error

	// SumAmountByUser computes the true sum over a user's live expenses.
	SumAmountByUser(ctx context.Context, userID string) (float64, error)
}
