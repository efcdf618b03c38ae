package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/spendtrack/internal/expense/service"
	"github.com/aussiebroadwan/spendtrack/pkg/httpx"
	"github.com/aussiebroadwan/spendtrack/pkg/slogx"
)

type ExpenseListHandler struct {
	ExpenseService *service.ExpenseService
}

// HandleListAll godoc
//
//	@Summary		List every recorded expense
//	@Tags			Expenses
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	ExpenseListResponse	"success, data"
//	@Failure		401	{object}	ErrorResponse		"invalid or missing access token"
//	@Failure		500	{object}	ErrorResponse		"internal server error"
//	@Router			/v1/expenses [get].
func (h *ExpenseListHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	expenses, err := h.ExpenseService.ListExpenses(ctx)
	if err != nil {
		log.Error("failed to list expenses", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to list expenses")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ExpenseListResponse{Success: true, Data: toExpenseDTOs(expenses)})
}

// HandleListMine godoc
//
//	@Summary		List the authenticated user's expenses
//	@Tags			Expenses
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	ExpenseListResponse	"success, data"
//	@Failure		401	{object}	ErrorResponse		"invalid or missing access token"
//	@Failure		404	{object}	ErrorResponse		"user not found"
//	@Failure		500	{object}	ErrorResponse		"internal server error"
//	@Router			/v1/expenses/mine [get].
func (h *ExpenseListHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "invalid access token")
		return
	}

	expenses, err := h.ExpenseService.ListUserExpenses(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		log.Error("failed to list user expenses", "user_id", userID, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to list expenses")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ExpenseListResponse{Success: true, Data: toExpenseDTOs(expenses)})
}
