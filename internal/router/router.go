package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-comments-service/internal/config"
	"go-comments-service/internal/handler"
	"go-comments-service/internal/middleware"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Comment *handler.CommentHandler
	Health  *handler.HealthHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", h.Health.Check)

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/login", h.Auth.Login)
			auth.With(authMiddleware.RequireRefresh).Post("/refresh", h.Auth.Refresh)
		})

		api.Route("/users", func(users chi.Router) {
			users.Post("/sign-up", h.User.SignUp)
			users.With(authMiddleware.RequireAccess).Get("/me", h.User.Me)
			users.With(authMiddleware.RequireAccess).Patch("/{user_id}/update", h.User.Update)
		})

		api.Route("/comments", func(comments chi.Router) {
			comments.Use(authMiddleware.RequireAccess)
			comments.Post("/", h.Comment.Create)
			comments.Get("/my_comments", h.Comment.MyComments)
			comments.Get("/search", h.Comment.Search)
			comments.Get("/{comment_id}", h.Comment.Get)
			comments.Patch("/{comment_id}", h.Comment.Update)
			comments.Delete("/{comment_id}", h.Comment.Delete)
		})
	})

	return r
}
