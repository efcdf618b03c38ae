package expense_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupExpenseContainer(t)
	defer cleanup()

	code, body := doRequest(t, http.MethodGet, baseURL+"/livez", "", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", body["status"])

	code, body = doRequest(t, http.MethodGet, baseURL+"/readyz", "", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", body["status"])
}

func TestExpenseLifecycle(t *testing.T) {
	baseURL, cleanup := setupExpenseContainer(t)
	defer cleanup()

	userID, token := signupAndLogin(t, baseURL, "alice", "Password123!")

	// Record two expenses
	code, body := doRequest(t, http.MethodPost, baseURL+"/v1/expenses", token, map[string]any{
		"amount":      12.5,
		"description": "lunch",
		"category":    "food",
	})
	require.Equal(t, http.StatusOK, code)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	expenseID, _ := data["id"].(string)
	require.NotEmpty(t, expenseID)

	code, _ = doRequest(t, http.MethodPost, baseURL+"/v1/expenses", token, map[string]any{
		"amount":      7.5,
		"description": "bus",
		"category":    "transport",
	})
	require.Equal(t, http.StatusOK, code)

	// Running total reflects both
	code, body = doRequest(t, http.MethodGet, baseURL+"/v1/userinfo", token, nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, userID, body["user_id"])
	require.InDelta(t, 20, body["total_expenses"], 1e-9)

	// Update the first expense's amount; total moves by the difference
	code, _ = doRequest(t, http.MethodPut, baseURL+"/v1/expenses/"+expenseID, token, map[string]any{
		"amount": 20.0,
	})
	require.Equal(t, http.StatusOK, code)

	code, body = doRequest(t, http.MethodGet, baseURL+"/v1/userinfo", token, nil)
	require.Equal(t, http.StatusOK, code)
	require.InDelta(t, 27.5, body["total_expenses"], 1e-9)

	// Delete it and the total drops back
	code, _ = doRequest(t, http.MethodDelete, baseURL+"/v1/expenses/"+expenseID, token, nil)
	require.Equal(t, http.StatusOK, code)

	code, body = doRequest(t, http.MethodGet, baseURL+"/v1/userinfo", token, nil)
	require.Equal(t, http.StatusOK, code)
	require.InDelta(t, 7.5, body["total_expenses"], 1e-9)

	// Deleting again is a 404, not a silent success
	code, _ = doRequest(t, http.MethodDelete, baseURL+"/v1/expenses/"+expenseID, token, nil)
	require.Equal(t, http.StatusNotFound, code)

	// Only the remaining expense is listed
	code, body = doRequest(t, http.MethodGet, baseURL+"/v1/expenses/mine", token, nil)
	require.Equal(t, http.StatusOK, code)
	list, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
}

func TestLeaderboardRanking(t *testing.T) {
	baseURL, cleanup := setupExpenseContainer(t)
	defer cleanup()

	aliceID, aliceToken := signupAndLogin(t, baseURL, "alice", "Password123!")
	bobID, bobToken := signupAndLogin(t, baseURL, "bob", "Password123!")

	for _, amount := range []float64{10, 20} {
		code, _ := doRequest(t, http.MethodPost, baseURL+"/v1/expenses", aliceToken, map[string]any{"amount": amount})
		require.Equal(t, http.StatusOK, code)
	}
	code, _ := doRequest(t, http.MethodPost, baseURL+"/v1/expenses", bobToken, map[string]any{"amount": 5.0})
	require.Equal(t, http.StatusOK, code)

	code, body := doRequest(t, http.MethodGet, baseURL+"/v1/leaderboard", aliceToken, nil)
	require.Equal(t, http.StatusOK, code)

	board, ok := body["leaderboard"].([]any)
	require.True(t, ok)
	require.Len(t, board, 2)

	first, ok := board[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, aliceID, first["id"])
	require.InDelta(t, 30, first["total_cost"], 1e-9)

	second, ok := board[1].(map[string]any)
	require.True(t, ok)
	require.Equal(t, bobID, second["id"])
	require.InDelta(t, 5, second["total_cost"], 1e-9)
}

func TestExportReturnsFileURL(t *testing.T) {
	baseURL, cleanup := setupExpenseContainer(t)
	defer cleanup()

	_, token := signupAndLogin(t, baseURL, "alice", "Password123!")

	code, _ := doRequest(t, http.MethodPost, baseURL+"/v1/expenses", token, map[string]any{"amount": 42.0})
	require.Equal(t, http.StatusOK, code)

	code, body := doRequest(t, http.MethodGet, baseURL+"/v1/export", token, nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, body["success"])

	fileURL, _ := body["file_url"].(string)
	require.NotEmpty(t, fileURL)
}

func TestAuthRequiredOnExpenseRoutes(t *testing.T) {
	baseURL, cleanup := setupExpenseContainer(t)
	defer cleanup()

	code, _ := doRequest(t, http.MethodGet, baseURL+"/v1/expenses", "", nil)
	require.Equal(t, http.StatusUnauthorized, code)

	code, _ = doRequest(t, http.MethodPost, baseURL+"/v1/expenses", "garbage-token", map[string]any{"amount": 1.0})
	require.Equal(t, http.StatusUnauthorized, code)

	code, _ = doRequest(t, http.MethodPost, baseURL+"/v1/users/login", "", map[string]string{
		"username": "nobody",
		"password": "nothing",
	})
	require.Equal(t, http.StatusUnauthorized, code)
}
