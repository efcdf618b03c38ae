package domain

import "time"

type User struct {
	ID            string
	Username      string
	PreferredName string
	PasswordHash  string // argon2 encoded

	// TotalExpenses is the denormalized running sum of this user's expense
	// amounts. Every amount mutation adjusts it inside the same transaction
	// as the expense write.
	TotalExpenses float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaderboardEntry is one row of the ranked spend view. Total is computed
// from the expense rows, not read from the cached column.
type LeaderboardEntry struct {
	UserID string
	Name   string
	Total  float64
}
