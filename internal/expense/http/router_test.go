package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/spendtrack/internal/expense/blob/memory"
	"github.com/aussiebroadwan/spendtrack/internal/expense/service"
	"github.com/aussiebroadwan/spendtrack/internal/expense/store/drivers/sqlite"
	"github.com/aussiebroadwan/spendtrack/pkg/jwtx"
	"github.com/aussiebroadwan/spendtrack/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*Router, *memory.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	pemKey, err := jwtx.GenerateEd25519PEM()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("test-key", pemKey)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierEdDSA(signer.KID(), signer.Public(), "test-issuer")

	blobs := memory.NewStore()

	logger := slogx.New(slogx.Config{Level: "error", Format: "text"})
	r := NewRouter(verifier, "test", st, logger)
	r.UserService = &service.UserService{
		Store:     st,
		Signer:    signer,
		Issuer:    "test-issuer",
		AccessTTL: time.Minute,
	}
	r.ExpenseService = &service.ExpenseService{Store: st}
	r.LeaderboardService = &service.LeaderboardService{Store: st}
	r.ExportService = &service.ExportService{Store: st, Blobs: blobs}
	r.ApplyRoutes()

	return r, blobs
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func signupAndLogin(t *testing.T, r *Router, username, password string) (string, string) {
	t.Helper()

	rec := doJSON(t, r, http.MethodPost, "/v1/users/signup", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	signup := decodeBody[SignupResponse](t, rec)
	require.True(t, signup.Success)
	require.NotEmpty(t, signup.UserID)

	rec = doJSON(t, r, http.MethodPost, "/v1/users/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	login := decodeBody[LoginResponse](t, rec)
	require.True(t, login.Success)
	require.Equal(t, "Bearer", login.TokenType)
	require.NotEmpty(t, login.AccessToken)

	return signup.UserID, login.AccessToken
}

func TestSignupAndLoginFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	userID, token := signupAndLogin(t, r, "alice", "correct horse battery")

	t.Run("duplicate username conflicts", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/v1/users/signup", "", map[string]string{
			"username": "alice",
			"password": "another password",
		})
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/v1/users/login", "", map[string]string{
			"username": "alice",
			"password": "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("userinfo returns the profile", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/v1/userinfo", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		info := decodeBody[UserInfoResponse](t, rec)
		require.Equal(t, userID, info.UserID)
		require.Equal(t, "alice", info.Username)
		require.Zero(t, info.TotalExpenses)
	})
}

func TestSignupValidatesInput(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/v1/users/signup", "", map[string]string{
		"username": "",
		"password": "secret",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExpenseRoutesRequireAuth(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/v1/expenses"},
		{http.MethodGet, "/v1/expenses"},
		{http.MethodGet, "/v1/expenses/mine"},
		{http.MethodPut, "/v1/expenses/some-id"},
		{http.MethodDelete, "/v1/expenses/some-id"},
		{http.MethodGet, "/v1/leaderboard"},
		{http.MethodGet, "/v1/export"},
		{http.MethodGet, "/v1/userinfo"},
	} {
		rec := doJSON(t, r, tc.method, tc.path, "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)

		rec = doJSON(t, r, tc.method, tc.path, "not-a-token", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s with bad token", tc.method, tc.path)
	}
}

func TestExpenseLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)
	_, token := signupAndLogin(t, r, "alice", "password")

	rec := doJSON(t, r, http.MethodPost, "/v1/expenses", token, map[string]any{
		"amount":      12.5,
		"description": "lunch",
		"category":    "food",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeBody[ExpenseResponse](t, rec)
	require.True(t, created.Success)
	require.NotEmpty(t, created.Data.ID)
	require.InDelta(t, 12.5, created.Data.Amount, 1e-9)

	t.Run("negative amount rejected", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/v1/expenses", token, map[string]any{
			"amount": -5.0,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("listing shows the expense", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/v1/expenses/mine", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		list := decodeBody[ExpenseListResponse](t, rec)
		require.Len(t, list.Data, 1)
		require.Equal(t, created.Data.ID, list.Data[0].ID)
	})

	t.Run("update shifts amount and total", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPut, "/v1/expenses/"+created.Data.ID, token, map[string]any{
			"amount": 20.0,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		updated := decodeBody[UpdateExpenseResponse](t, rec)
		require.InDelta(t, 20, updated.Expense.Amount, 1e-9)
		require.Equal(t, "lunch", updated.Expense.Description)

		rec = doJSON(t, r, http.MethodGet, "/v1/userinfo", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		info := decodeBody[UserInfoResponse](t, rec)
		require.InDelta(t, 20, info.TotalExpenses, 1e-9)
	})

	t.Run("delete removes it and resets the total", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodDelete, "/v1/expenses/"+created.Data.ID, token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		deleted := decodeBody[DeleteExpenseResponse](t, rec)
		require.True(t, deleted.Success)

		rec = doJSON(t, r, http.MethodGet, "/v1/expenses/mine", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		list := decodeBody[ExpenseListResponse](t, rec)
		require.Empty(t, list.Data)

		rec = doJSON(t, r, http.MethodGet, "/v1/userinfo", token, nil)
		info := decodeBody[UserInfoResponse](t, rec)
		require.Zero(t, info.TotalExpenses)
	})

	t.Run("deleting again is a 404", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodDelete, "/v1/expenses/"+created.Data.ID, token, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLeaderboardEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	aliceID, aliceToken := signupAndLogin(t, r, "alice", "password")
	bobID, bobToken := signupAndLogin(t, r, "bob", "password")

	for _, amount := range []float64{10, 20} {
		rec := doJSON(t, r, http.MethodPost, "/v1/expenses", aliceToken, map[string]any{"amount": amount})
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := doJSON(t, r, http.MethodPost, "/v1/expenses", bobToken, map[string]any{"amount": 5.0})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/v1/leaderboard", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	board := decodeBody[LeaderboardResponse](t, rec)
	require.Len(t, board.Leaderboard, 2)
	require.Equal(t, aliceID, board.Leaderboard[0].ID)
	require.InDelta(t, 30, board.Leaderboard[0].TotalCost, 1e-9)
	require.Equal(t, bobID, board.Leaderboard[1].ID)
	require.InDelta(t, 5, board.Leaderboard[1].TotalCost, 1e-9)

	t.Run("out-of-range page is empty", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/v1/leaderboard?page=100&size=10", aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		board := decodeBody[LeaderboardResponse](t, rec)
		require.NotNil(t, board.Leaderboard)
		require.Empty(t, board.Leaderboard)
	})

	t.Run("size caps the page", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/v1/leaderboard?size=1", aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		board := decodeBody[LeaderboardResponse](t, rec)
		require.Len(t, board.Leaderboard, 1)
		require.Equal(t, aliceID, board.Leaderboard[0].ID)
	})
}

func TestExportEndpoint(t *testing.T) {
	r, blobs := newTestRouter(t)
	userID, token := signupAndLogin(t, r, "alice", "password")

	rec := doJSON(t, r, http.MethodPost, "/v1/expenses", token, map[string]any{"amount": 42.0})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/v1/export", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	export := decodeBody[ExportResponse](t, rec)
	require.True(t, export.Success)
	require.Contains(t, export.FileURL, fmt.Sprintf("Expense%s/", userID))

	keys := blobs.Keys()
	require.Len(t, keys, 1)

	t.Run("upload failure maps to bad gateway", func(t *testing.T) {
		blobs.FailUploads = true
		defer func() { blobs.FailUploads = false }()

		rec := doJSON(t, r, http.MethodGet, "/v1/export", token, nil)
		require.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestHealthEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decodeBody[HealthResponse](t, rec)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "test", health.Version)

	rec = doJSON(t, r, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ready := decodeBody[HealthResponse](t, rec)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}
