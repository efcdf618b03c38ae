package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/spendtrack/internal/expense/domain"
	"github.com/aussiebroadwan/spendtrack/pkg/httpx"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ExpenseDTO is the wire representation of an expense.
type ExpenseDTO struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toExpenseDTO(e domain.Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:          e.ID,
		UserID:      e.UserID,
		Amount:      e.Amount,
		Description: e.Description,
		Category:    e.Category,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toExpenseDTOs(expenses []domain.Expense) []ExpenseDTO {
	out := make([]ExpenseDTO, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseDTO(e))
	}
	return out
}

// ExpenseResponse wraps a single expense.
type ExpenseResponse struct {
	Success bool       `json:"success"`
	Data    ExpenseDTO `json:"data"`
}

// ExpenseListResponse wraps a list of expenses.
type ExpenseListResponse struct {
	Success bool         `json:"success"`
	Data    []ExpenseDTO `json:"data"`
}

// UpdateExpenseResponse is returned by PUT /v1/expenses/{id}.
type UpdateExpenseResponse struct {
	Message string     `json:"message"`
	Expense ExpenseDTO `json:"expense"`
}

// DeleteExpenseResponse is returned by DELETE /v1/expenses/{id}.
type DeleteExpenseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LeaderboardRow is one ranked user on the board.
type LeaderboardRow struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	TotalCost float64 `json:"total_cost"`
}

// LeaderboardResponse is returned by GET /v1/leaderboard.
type LeaderboardResponse struct {
	Leaderboard []LeaderboardRow `json:"leaderboard"`
}

// ExportResponse is returned by GET /v1/export.
type ExportResponse struct {
	Success bool   `json:"success"`
	FileURL string `json:"file_url"`
}

// SignupResponse is returned by POST /v1/users/signup.
type SignupResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id"`
}

// LoginResponse is returned by POST /v1/users/login.
type LoginResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds until expiry
}

// UserInfoResponse is returned by GET /v1/userinfo.
type UserInfoResponse struct {
	UserID        string  `json:"user_id"`
	Username      string  `json:"username"`
	PreferredName string  `json:"preferred_name"`
	TotalExpenses float64 `json:"total_expenses"`
}

// HealthChecks lists dependency states for the readiness probe.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

func writeError(w http.ResponseWriter, code int, message string) {
	httpx.WriteJSON(w, code, ErrorResponse{Success: false, Message: message})
}
