package sqlite

import (
	"context"

	"github.com/aussiebroadwan/spendtrack/internal/expense/domain"
	"github.com/aussiebroadwan/spendtrack/internal/expense/store"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, username, preferred_name, password_hash, total_expenses, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, preferred_name, password_hash, total_expenses)
		 VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.PreferredName, u.PasswordHash, u.TotalExpenses)
	if err != nil {
		return mapAlreadyExists(err)
	}
	return nil
}

func (r *usersRepo) AdjustTotalBy(ctx context.Context, userID string, delta float64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET total_expenses = total_expenses + ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		delta, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) Leaderboard(ctx context.Context, limit, offset int) ([]domain.LeaderboardEntry, error) {
	// Summed from the expense rows rather than the cached column so the view
	// is correct even if the cache has drifted.
	rows, err := r.db.QueryContext(ctx,
		`SELECT u.id, u.preferred_name, COALESCE(SUM(e.amount), 0) AS total_cost
		 FROM users u
		 LEFT JOIN expenses e ON e.user_id = u.id
		 GROUP BY u.id
		 ORDER BY total_cost DESC, u.id ASC
		 LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Name, &e.Total); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (domain.User, error) {
	var u domain.User
	err := s.Scan(
		&u.ID,
		&u.Username,
		&u.PreferredName,
		&u.PasswordHash,
		&u.TotalExpenses,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}
