package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"go-comments-service/internal/model"
	"go-comments-service/internal/security"
	"go-comments-service/internal/token"
	"go-comments-service/pkg/apierror"
)

// authUserStore is the slice of the user store the auth flow needs.
type authUserStore interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}

type AuthService struct {
	users  authUserStore
	codec  *token.Codec
	issuer *token.Issuer
}

func NewAuthService(users authUserStore, codec *token.Codec, issuer *token.Issuer) *AuthService {
	return &AuthService{users: users, codec: codec, issuer: issuer}
}

// Login exchanges credentials for an access+refresh pair. Unknown usernames
// and wrong passwords fail identically so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username string, password string) (model.TokenInfo, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			security.BurnPassword(password)
			return model.TokenInfo{}, apierror.Unauthorized("invalid username or password")
		}
		return model.TokenInfo{}, err
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		return model.TokenInfo{}, apierror.Unauthorized("invalid username or password")
	}

	if !user.IsActive {
		return model.TokenInfo{}, apierror.Forbidden("user inactive")
	}

	authUser := user.AuthUser()
	accessToken, err := s.issuer.IssueAccess(authUser)
	if err != nil {
		return model.TokenInfo{}, fmt.Errorf("issue access token: %w", err)
	}
	refreshToken, err := s.issuer.IssueRefresh(authUser)
	if err != nil {
		return model.TokenInfo{}, fmt.Errorf("issue refresh token: %w", err)
	}

	if err := s.users.TouchLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		// The login itself succeeded; a missed timestamp is not worth a 500.
		slog.Warn("failed to record last login", "user_id", user.ID, "error", err)
	}

	return model.TokenInfo{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	}, nil
}

// AccessFor mints a fresh access token for an already-resolved identity. The
// refresh endpoint uses it after the refresh token has been verified; the
// presented refresh token stays valid until its own expiry.
func (s *AuthService) AccessFor(user model.AuthUser) (model.TokenInfo, error) {
	accessToken, err := s.issuer.IssueAccess(user)
	if err != nil {
		return model.TokenInfo{}, fmt.Errorf("issue access token: %w", err)
	}

	return model.TokenInfo{AccessToken: accessToken, TokenType: "Bearer"}, nil
}

// Resolve decodes a bearer string, checks it carries the expected kind and
// resolves its subject to a live account. Decode failures are logged with
// detail server-side but surface as one generic unauthenticated error.
func (s *AuthService) Resolve(ctx context.Context, bearer string, expected token.Kind) (model.AuthUser, error) {
	payload, err := s.codec.Decode(bearer)
	if err != nil {
		slog.Debug("bearer token rejected", "reason", err)
		return model.AuthUser{}, apierror.Unauthorized("invalid or expired token")
	}

	if payload.Kind() != expected {
		return model.AuthUser{}, apierror.Unauthorized(
			fmt.Sprintf("invalid token type %q, expected %q", payload.Kind(), expected))
	}

	id, err := strconv.ParseInt(payload.Subject(), 10, 64)
	if err != nil {
		return model.AuthUser{}, apierror.Unauthorized("invalid token subject")
	}

	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.AuthUser{}, apierror.Unauthorized("invalid token subject")
	}
	if err != nil {
		return model.AuthUser{}, err
	}

	if !user.IsActive {
		return model.AuthUser{}, apierror.Forbidden("user inactive")
	}

	return user.AuthUser(), nil
}
