package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/spendtrack/internal/expense/domain"
	"github.com/aussiebroadwan/spendtrack/internal/expense/service"
	"github.com/aussiebroadwan/spendtrack/pkg/httpx"
	"github.com/aussiebroadwan/spendtrack/pkg/slogx"
)

type ExpenseUpdateHandler struct {
	ExpenseService *service.ExpenseService
}

type updateExpenseRequest struct {
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
}

// ServeHTTP godoc
//
//	@Summary		Update an expense
//	@Description	Applies a partial update; omitted fields keep their value. Amount changes move the owner's total by the difference.
//	@Tags			Expenses
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Expense ID"
//	@Param			body	body		updateExpenseRequest	true	"fields to change"
//	@Success		200		{object}	UpdateExpenseResponse	"message, expense"
//	@Failure		400		{object}	ErrorResponse			"invalid amount or body"
//	@Failure		401		{object}	ErrorResponse			"invalid or missing access token"
//	@Failure		404		{object}	ErrorResponse			"expense not found"
//	@Failure		500		{object}	ErrorResponse			"internal server error"
//	@Router			/v1/expenses/{id} [put].
func (h *ExpenseUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	expenseID := r.PathValue("id")
	if expenseID == "" {
		writeError(w, http.StatusBadRequest, "expense id is required")
		return
	}

	var req updateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := domain.ExpensePatch{
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
	}

	updated, err := h.ExpenseService.UpdateExpense(ctx, expenseID, patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			writeError(w, http.StatusBadRequest, "amount must be a positive number")
		case errors.Is(err, service.ErrExpenseNotFound):
			writeError(w, http.StatusNotFound, "expense not found")
		default:
			log.Error("failed to update expense", "expense_id", expenseID, "err", err)
			writeError(w, http.StatusInternalServerError, "failed to update expense")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, UpdateExpenseResponse{
		Message: "expense updated",
		Expense: toExpenseDTO(updated),
	})
}
