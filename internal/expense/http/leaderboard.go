package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/spendtrack/internal/expense/service"
	"github.com/aussiebroadwan/spendtrack/pkg/httpx"
	"github.com/aussiebroadwan/spendtrack/pkg/slogx"
)

type LeaderboardHandler struct {
	LeaderboardService *service.LeaderboardService
}

// ServeHTTP godoc
//
//	@Summary		Ranked spending leaderboard
//	@Description	Users ordered by their summed expense amounts, highest first. Totals are computed from the expense rows.
//	@Tags			Leaderboard
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int					false	"Zero-based page index (default 0)"
//	@Param			size	query		int					false	"Page size (default 10, max 100)"
//	@Success		200		{object}	LeaderboardResponse	"leaderboard"
//	@Failure		401		{object}	ErrorResponse		"invalid or missing access token"
//	@Failure		500		{object}	ErrorResponse		"internal server error"
//	@Router			/v1/leaderboard [get].
func (h *LeaderboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Unparsable values fall back to the defaults rather than erroring.
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))

	entries, err := h.LeaderboardService.Leaderboard(ctx, page, size)
	if err != nil {
		log.Error("failed to build leaderboard", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to build leaderboard")
		return
	}

	rows := make([]LeaderboardRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, LeaderboardRow{ID: e.UserID, Name: e.Name, TotalCost: e.Total})
	}

	httpx.WriteJSON(w, http.StatusOK, LeaderboardResponse{Leaderboard: rows})
}
