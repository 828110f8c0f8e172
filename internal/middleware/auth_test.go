package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"go-comments-service/internal/model"
	"go-comments-service/internal/token"
	"go-comments-service/pkg/apierror"
)

type fakeResolver struct {
	users  map[string]model.AuthUser
	errs   map[string]error
	called []token.Kind
}

func (f *fakeResolver) Resolve(_ context.Context, bearer string, expected token.Kind) (model.AuthUser, error) {
	f.called = append(f.called, expected)
	if err, ok := f.errs[bearer]; ok {
		return model.AuthUser{}, err
	}
	if user, ok := f.users[bearer]; ok {
		return user, nil
	}
	return model.AuthUser{}, apierror.Unauthorized("invalid or expired token")
}

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(user)
	})
}

func TestAuthMiddleware_RequireAccess(t *testing.T) {
	alice := model.AuthUser{ID: 1, Username: "alice", IsActive: true}

	t.Run("valid bearer reaches the handler with the identity in context", func(t *testing.T) {
		resolver := &fakeResolver{users: map[string]model.AuthUser{"good-token": alice}}
		m := NewAuthMiddleware(resolver)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/comments/my_comments", nil)
		req.Header.Set("Authorization", "Bearer good-token")

		m.RequireAccess(protectedEcho(t)).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, []token.Kind{token.KindAccess}, resolver.called)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		m := NewAuthMiddleware(&fakeResolver{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/comments/my_comments", nil)

		m.RequireAccess(protectedEcho(t)).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer scheme is unauthorized", func(t *testing.T) {
		m := NewAuthMiddleware(&fakeResolver{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/comments/my_comments", nil)
		req.Header.Set("Authorization", "Basic YWxpY2U6c2VjcmV0")

		m.RequireAccess(protectedEcho(t)).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected bearer is unauthorized", func(t *testing.T) {
		m := NewAuthMiddleware(&fakeResolver{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/comments/my_comments", nil)
		req.Header.Set("Authorization", "Bearer expired-token")

		m.RequireAccess(protectedEcho(t)).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body model.APIResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.False(t, body.Success)
		require.Equal(t, "UNAUTHORIZED", body.Error.Code)
	})

	t.Run("inactive account propagates forbidden", func(t *testing.T) {
		resolver := &fakeResolver{errs: map[string]error{
			"inactive-token": apierror.Forbidden("user inactive"),
		}}
		m := NewAuthMiddleware(resolver)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/comments/my_comments", nil)
		req.Header.Set("Authorization", "Bearer inactive-token")

		m.RequireAccess(protectedEcho(t)).ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAuthMiddleware_RequireRefresh(t *testing.T) {
	resolver := &fakeResolver{users: map[string]model.AuthUser{
		"refresh-token": {ID: 1, Username: "alice"},
	}}
	m := NewAuthMiddleware(resolver)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer refresh-token")

	m.RequireRefresh(protectedEcho(t)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []token.Kind{token.KindRefresh}, resolver.called)
}
