package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/spendtrack/internal/expense/service"
	"github.com/aussiebroadwan/spendtrack/pkg/httpx"
	"github.com/aussiebroadwan/spendtrack/pkg/slogx"
)

type ExpenseDeleteHandler struct {
	ExpenseService *service.ExpenseService
}

// ServeHTTP godoc
//
//	@Summary		Delete an expense
//	@Description	Removes the expense and decrements the owner's running total atomically
//	@Tags			Expenses
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Expense ID"
//	@Success		200	{object}	DeleteExpenseResponse	"success, message"
//	@Failure		401	{object}	ErrorResponse			"invalid or missing access token"
//	@Failure		404	{object}	ErrorResponse			"expense not found"
//	@Failure		500	{object}	ErrorResponse			"internal server error"
//	@Router			/v1/expenses/{id} [delete].
func (h *ExpenseDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	expenseID := r.PathValue("id")
	if expenseID == "" {
		writeError(w, http.StatusBadRequest, "expense id is required")
		return
	}

	if err := h.ExpenseService.DeleteExpense(ctx, expenseID); err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			writeError(w, http.StatusNotFound, "expense not found")
			return
		}
		log.Error("failed to delete expense", "expense_id", expenseID, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to delete expense")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, DeleteExpenseResponse{Success: true, Message: "expense deleted"})
}
