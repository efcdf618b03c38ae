package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/spendtrack/internal/expense/service"
	"github.com/aussiebroadwan/spendtrack/pkg/httpx"
	"github.com/aussiebroadwan/spendtrack/pkg/jwtx"
	"github.com/aussiebroadwan/spendtrack/pkg/slogx"
)

type LoginHandler struct {
	UserService *service.UserService
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ServeHTTP godoc
//
//	@Summary		Exchange credentials for an access token
//	@Description	Verifies username and password and issues a signed bearer token carrying the expense scopes
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest	true	"username, password"
//	@Success		200		{object}	LoginResponse	"success, access_token, token_type, expires_in"
//	@Failure		400		{object}	ErrorResponse	"missing fields"
//	@Failure		401		{object}	ErrorResponse	"invalid credentials"
//	@Failure		500		{object}	ErrorResponse	"internal server error"
//	@Router			/v1/users/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	token, _, err := h.UserService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		log.Error("login failed", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	ttl := h.UserService.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		Success:     true,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
	})
}
