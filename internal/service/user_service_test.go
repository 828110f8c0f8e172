package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"go-comments-service/internal/model"
	"go-comments-service/internal/security"
	"go-comments-service/pkg/apierror"
)

func TestUserService_Register(t *testing.T) {
	t.Run("creates an active user with a hashed password", func(t *testing.T) {
		store := newFakeUserStore()
		svc := NewUserService(store)

		user, err := svc.Register(context.Background(), model.UserCreate{
			Email:    "alice@x.com",
			Password: "secret1",
			Username: "alice",
		})
		require.NoError(t, err)
		require.NotZero(t, user.ID)

		stored := store.users[user.ID]
		require.True(t, stored.IsActive)
		require.NotEqual(t, "secret1", stored.PasswordHash)
		require.True(t, security.VerifyPassword("secret1", stored.PasswordHash))
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		store := newFakeUserStore(model.User{ID: 1, Username: "alice", Email: "alice@x.com"})
		svc := NewUserService(store)

		_, err := svc.Register(context.Background(), model.UserCreate{
			Email:    "other@x.com",
			Password: "secret1",
			Username: "alice",
		})
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusConflict, apiErr.HTTPStatus)
		require.Equal(t, "username", apiErr.Details)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		store := newFakeUserStore(model.User{ID: 1, Username: "alice", Email: "alice@x.com"})
		svc := NewUserService(store)

		_, err := svc.Register(context.Background(), model.UserCreate{
			Email:    "alice@x.com",
			Password: "secret1",
			Username: "bob1",
		})
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusConflict, apiErr.HTTPStatus)
		require.Equal(t, "email", apiErr.Details)
	})

	t.Run("rejects out-of-bounds fields", func(t *testing.T) {
		svc := NewUserService(newFakeUserStore())

		cases := []model.UserCreate{
			{Email: "a@x.com", Password: "secret1", Username: "abc"},
			{Email: "a@x.com", Password: "secret1", Username: "waytoolongusername"},
			{Email: "a@x.com", Password: "pw", Username: "alice"},
			{Email: "not-an-email", Password: "secret1", Username: "alice"},
			{Email: "", Password: "secret1", Username: "alice"},
		}

		for _, in := range cases {
			_, err := svc.Register(context.Background(), in)
			var apiErr *apierror.APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
		}
	})
}

func TestUserService_Update(t *testing.T) {
	alice := model.User{ID: 1, Username: "alice", Email: "alice@x.com", IsActive: true}
	bob := model.User{ID: 2, Username: "bobby", Email: "bob@x.com", IsActive: true}
	actorAlice := alice.AuthUser()

	strPtr := func(s string) *string { return &s }

	t.Run("unknown target is not found", func(t *testing.T) {
		svc := NewUserService(newFakeUserStore(alice))
		_, err := svc.Update(context.Background(), 99, model.UserUpdate{}, actorAlice)
		require.ErrorIs(t, err, model.ErrUserNotFound)
	})

	t.Run("editing another user's profile is forbidden", func(t *testing.T) {
		svc := NewUserService(newFakeUserStore(alice, bob))
		_, err := svc.Update(context.Background(), bob.ID, model.UserUpdate{Username: strPtr("mallory")}, actorAlice)
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusForbidden, apiErr.HTTPStatus)
	})

	t.Run("taken username conflicts before anything is written", func(t *testing.T) {
		store := newFakeUserStore(alice, bob)
		svc := NewUserService(store)

		_, err := svc.Update(context.Background(), alice.ID, model.UserUpdate{
			Email:    strPtr("fresh@x.com"),
			Username: strPtr("bobby"),
		}, actorAlice)

		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusConflict, apiErr.HTTPStatus)
		require.Zero(t, store.updateCalls)
		require.Equal(t, "alice@x.com", store.users[alice.ID].Email)
	})

	t.Run("applies all supplied fields at once", func(t *testing.T) {
		store := newFakeUserStore(alice)
		svc := NewUserService(store)

		updated, err := svc.Update(context.Background(), alice.ID, model.UserUpdate{
			Email:    strPtr("new@x.com"),
			Username: strPtr("newalice"),
			Password: strPtr("newsecret"),
		}, actorAlice)
		require.NoError(t, err)
		require.Equal(t, "new@x.com", updated.Email)
		require.Equal(t, "newalice", updated.Username)
		require.Equal(t, 1, store.updateCalls)
		require.True(t, security.VerifyPassword("newsecret", store.users[alice.ID].PasswordHash))
	})

	t.Run("keeping your own values is not a conflict", func(t *testing.T) {
		store := newFakeUserStore(alice, bob)
		svc := NewUserService(store)

		_, err := svc.Update(context.Background(), alice.ID, model.UserUpdate{
			Email:    strPtr("alice@x.com"),
			Username: strPtr("alice"),
		}, actorAlice)
		require.NoError(t, err)
	})
}
