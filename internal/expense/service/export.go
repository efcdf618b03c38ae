package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/spendtrack/internal/expense/blob"
	"github.com/aussiebroadwan/spendtrack/internal/expense/store"
	"github.com/aussiebroadwan/spendtrack/pkg/slogx"
)

// ErrUpstream indicates the object store rejected or failed the upload.
var ErrUpstream = errors.New("upstream_storage_failed")

type ExportService struct {
	Store store.Store
	Blobs blob.Store

	// Now is overridable for deterministic object keys in tests.
	Now func() time.Time
}

// exportSnapshot is the serialized shape written to object storage.
type exportSnapshot struct {
	ExportedAt time.Time    `json:"exported_at"`
	ExportedBy string       `json:"exported_by"`
	Users      []exportUser `json:"users"`
}

type exportUser struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	PreferredName string  `json:"preferred_name"`
	TotalExpenses float64 `json:"total_expenses"`
}

// Export serializes a snapshot of every user and their running total, uploads
// it to object storage under a key scoped to the requesting user, and returns
// the public URL. Upload failures surface as ErrUpstream so callers can
// distinguish them from local errors.
func (s *ExportService) Export(ctx context.Context, requestingUserID string) (string, error) {
	l := slogx.FromContext(ctx)

	if _, err := s.Store.Users().GetUserByID(ctx, requestingUserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return "", err
	}

	rows := make([]exportUser, 0, len(users))
	for _, u := range users {
		rows = append(rows, exportUser{
			ID:            u.ID,
			Username:      u.Username,
			PreferredName: u.PreferredName,
			TotalExpenses: u.TotalExpenses,
		})
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	at := now().UTC()

	snapshot := exportSnapshot{
		ExportedAt: at,
		ExportedBy: requestingUserID,
		Users:      rows,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("Expense%s/%s.txt", requestingUserID, at.Format(time.RFC3339))

	url, err := s.Blobs.Upload(ctx, key, data)
	if err != nil {
		l.Error("export upload failed",
			slog.Any("error", err),
			slog.String("user_id", requestingUserID),
			slog.String("key", key),
		)
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	return url, nil
}
