package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/spendtrack/internal/expense/domain"
	"github.com/aussiebroadwan/spendtrack/internal/expense/store"
	"github.com/aussiebroadwan/spendtrack/pkg/cryptox"
	"github.com/aussiebroadwan/spendtrack/pkg/idx"
	"github.com/aussiebroadwan/spendtrack/pkg/jwtx"
	"github.com/aussiebroadwan/spendtrack/pkg/slogx"
)

// Scopes granted to every account on login.
const (
	ScopeExpenseRead  = "expense:read"
	ScopeExpenseWrite = "expense:write"
)

var (
	ErrUsernameTaken      = errors.New("username_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

type UserService struct {
	Store     store.Store
	Signer    jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
}

// Signup registers a new account. Usernames are unique; the password is
// stored as an argon2id hash.
func (s *UserService) Signup(ctx context.Context, username, password, preferredName string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	preferredName = strings.TrimSpace(preferredName)
	if username == "" || password == "" {
		return domain.User{}, ErrValidation
	}
	if preferredName == "" {
		preferredName = username
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:            idx.New().String(),
		Username:      username,
		PreferredName: preferredName,
		PasswordHash:  hash,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		l.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, u.ID)
}

// Login verifies the credentials and issues a signed access token carrying
// the expense scopes.
func (s *UserService) Login(ctx context.Context, username, password string) (string, domain.User, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		l.Info("password verification failed", slog.String("username", username))
		return "", domain.User{}, ErrInvalidCredentials
	}

	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(
		u.ID,
		[]string{ScopeExpenseRead, ScopeExpenseWrite},
		ttl,
		s.Issuer,
		u.Username,
		u.PreferredName,
		time.Now(),
	)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		l.Error("failed to sign access token", slog.Any("error", err))
		return "", domain.User{}, err
	}

	return token, u, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}
