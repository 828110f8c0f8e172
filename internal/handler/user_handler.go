package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"go-comments-service/internal/middleware"
	"go-comments-service/internal/model"
	"go-comments-service/internal/service"
	"go-comments-service/pkg/apierror"
)

const birthdateLayout = "2006-01-02"

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// SignUp registers a new account from form-encoded fields.
func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	if err := r.ParseForm(); err != nil {
		writeError(w, apierror.BadRequest("invalid form body", ""))
		return
	}

	in := model.UserCreate{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		Username: r.PostFormValue("username"),
	}

	if raw := strings.TrimSpace(r.PostFormValue("birthdate")); raw != "" {
		birthdate, err := time.Parse(birthdateLayout, raw)
		if err != nil {
			writeError(w, apierror.BadRequest("invalid birthdate, expected YYYY-MM-DD", "birthdate"))
			return
		}
		in.Birthdate = &birthdate
	}

	user, err := h.service.Register(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, user, nil)
}

// Me returns the identity resolved from the access token.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized("authentication required"))
		return
	}

	writeSuccess(w, http.StatusOK, user, nil)
}

// Update applies a partial profile edit; absent form fields stay untouched.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized("authentication required"))
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		writeError(w, apierror.BadRequest("invalid user id", "user_id"))
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, apierror.BadRequest("invalid form body", ""))
		return
	}

	var in model.UserUpdate
	if values, exists := r.PostForm["email"]; exists && len(values) > 0 {
		in.Email = &values[0]
	}
	if values, exists := r.PostForm["password"]; exists && len(values) > 0 {
		in.Password = &values[0]
	}
	if values, exists := r.PostForm["username"]; exists && len(values) > 0 {
		in.Username = &values[0]
	}
	if raw := strings.TrimSpace(r.PostFormValue("birthdate")); raw != "" {
		birthdate, err := time.Parse(birthdateLayout, raw)
		if err != nil {
			writeError(w, apierror.BadRequest("invalid birthdate, expected YYYY-MM-DD", "birthdate"))
			return
		}
		in.Birthdate = &birthdate
	}

	user, err := h.service.Update(r.Context(), userID, in, actor)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, user, nil)
}
