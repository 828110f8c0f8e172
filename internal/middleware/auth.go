package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go-comments-service/internal/model"
	"go-comments-service/internal/token"
	"go-comments-service/pkg/apierror"
)

type authResolver interface {
	Resolve(ctx context.Context, bearer string, expected token.Kind) (model.AuthUser, error)
}

type contextKey string

const authUserContextKey contextKey = "auth_user"

type AuthMiddleware struct {
	resolver authResolver
}

func NewAuthMiddleware(resolver authResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// RequireAccess guards resource endpoints: only access tokens pass.
func (m *AuthMiddleware) RequireAccess(next http.Handler) http.Handler {
	return m.require(token.KindAccess, next)
}

// RequireRefresh guards the token-refresh endpoint: only refresh tokens pass.
func (m *AuthMiddleware) RequireRefresh(next http.Handler) http.Handler {
	return m.require(token.KindRefresh, next)
}

func (m *AuthMiddleware) require(expected token.Kind, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bearer, ok := extractBearer(r)
		if !ok {
			writeAuthError(w, apierror.Unauthorized("missing or invalid authorization header"))
			return
		}

		user, err := m.resolver.Resolve(r.Context(), bearer, expected)
		if err != nil {
			writeAuthError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), authUserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserFromContext(ctx context.Context) (model.AuthUser, bool) {
	user, ok := ctx.Value(authUserContextKey).(model.AuthUser)
	return user, ok
}

func extractBearer(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return "", false
	}

	bearer := strings.TrimSpace(header[7:])
	return bearer, bearer != ""
}

func writeAuthError(w http.ResponseWriter, err error) {
	status := http.StatusUnauthorized
	code := "UNAUTHORIZED"
	message := "authentication required"

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.HTTPStatus
		code = apiErr.Code
		message = apiErr.Message
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = jsonEncode(w, model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    code,
			Message: message,
		},
	})
}
