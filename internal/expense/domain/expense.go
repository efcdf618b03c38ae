package domain

import "time"

type Expense struct {
	ID          string
	UserID      string // owning user, set at creation and never reassigned
	Amount      float64
	Description string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExpensePatch carries a partial update. Nil fields are left unchanged.
type ExpensePatch struct {
	Amount      *float64
	Description *string
	Category    *string
}
