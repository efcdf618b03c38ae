package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/spendtrack/internal/expense/service"
	"github.com/aussiebroadwan/spendtrack/pkg/httpx"
	"github.com/aussiebroadwan/spendtrack/pkg/slogx"
)

type SignupHandler struct {
	UserService *service.UserService
}

type signupRequest struct {
	Username      string `json:"username"`
	PreferredName string `json:"preferred_name"`
	Password      string `json:"password"`
}

// ServeHTTP godoc
//
//	@Summary		Register a new account
//	@Description	Creates a user with a unique username and an argon2id-hashed password
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		signupRequest	true	"username, password, optional preferred_name"
//	@Success		200		{object}	SignupResponse	"success, user_id"
//	@Failure		400		{object}	ErrorResponse	"missing or invalid fields"
//	@Failure		409		{object}	ErrorResponse	"username already taken"
//	@Failure		500		{object}	ErrorResponse	"internal server error"
//	@Router			/v1/users/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.UserService.Signup(ctx, req.Username, req.Password, req.PreferredName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			writeError(w, http.StatusBadRequest, "username and password are required")
		case errors.Is(err, service.ErrUsernameTaken):
			writeError(w, http.StatusConflict, "username is already taken")
		default:
			log.Error("signup failed", "err", err)
			writeError(w, http.StatusInternalServerError, "failed to create user")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, SignupResponse{Success: true, UserID: u.ID})
}
