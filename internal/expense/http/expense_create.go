package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/spendtrack/internal/expense/service"
	"github.com/aussiebroadwan/spendtrack/pkg/httpx"
	"github.com/aussiebroadwan/spendtrack/pkg/slogx"
)

type ExpenseCreateHandler struct {
	ExpenseService *service.ExpenseService
}

type createExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// ServeHTTP godoc
//
//	@Summary		Record a new expense
//	@Description	Inserts an expense for the authenticated user and updates their running total in the same transaction
//	@Tags			Expenses
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		createExpenseRequest	true	"amount, description, category"
//	@Success		200		{object}	ExpenseResponse			"success, data"
//	@Failure		400		{object}	ErrorResponse			"invalid amount or body"
//	@Failure		401		{object}	ErrorResponse			"invalid or missing access token"
//	@Failure		500		{object}	ErrorResponse			"internal server error"
//	@Router			/v1/expenses [post].
func (h *ExpenseCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "invalid access token")
		return
	}

	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exp, err := h.ExpenseService.CreateExpense(ctx, userID, req.Amount, req.Description, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			writeError(w, http.StatusBadRequest, "amount must be a positive number")
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "user not found")
		default:
			log.Error("failed to create expense", "err", err)
			writeError(w, http.StatusInternalServerError, "failed to create expense")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ExpenseResponse{Success: true, Data: toExpenseDTO(exp)})
}
