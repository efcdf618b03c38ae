package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/spendtrack/internal/expense/service"
	"github.com/aussiebroadwan/spendtrack/pkg/httpx"
	"github.com/aussiebroadwan/spendtrack/pkg/slogx"
)

type ExportHandler struct {
	ExportService *service.ExportService
}

// ServeHTTP godoc
//
//	@Summary		Export a snapshot of all users and their totals
//	@Description	Uploads a JSON snapshot of every user and their running total to object storage and returns its URL
//	@Tags			Export
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	ExportResponse	"success, file_url"
//	@Failure		401	{object}	ErrorResponse	"invalid or missing access token"
//	@Failure		404	{object}	ErrorResponse	"user not found"
//	@Failure		502	{object}	ErrorResponse	"object storage rejected the upload"
//	@Failure		500	{object}	ErrorResponse	"internal server error"
//	@Router			/v1/export [get].
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "invalid access token")
		return
	}

	url, err := h.ExportService.Export(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, service.ErrUpstream):
			log.Error("export upload rejected", "user_id", userID, "err", err)
			writeError(w, http.StatusBadGateway, "failed to upload export")
		default:
			log.Error("export failed", "user_id", userID, "err", err)
			writeError(w, http.StatusInternalServerError, "failed to export expenses")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ExportResponse{Success: true, FileURL: url})
}
