package service

import (
	"context"

	"github.com/aussiebroadwan/spendtrack/internal/expense/domain"
	"github.com/aussiebroadwan/spendtrack/internal/expense/store"
)

const (
	DefaultLeaderboardPageSize = 10
	MaxLeaderboardPageSize     = 100
)

type LeaderboardService struct {
	Store store.Store
}

// Leaderboard returns users ranked by their summed expense amounts, highest
// first. Totals are computed from the expense rows themselves rather than the
// cached column so a drifted cache can never reorder the board. Pages outside
// the populated range yield an empty slice.
func (s *LeaderboardService) Leaderboard(ctx context.Context, page, size int) ([]domain.LeaderboardEntry, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultLeaderboardPageSize
	}
	if size > MaxLeaderboardPageSize {
		size = MaxLeaderboardPageSize
	}

	entries, err := s.Store.Users().Leaderboard(ctx, size, page*size)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	return entries, nil
}
