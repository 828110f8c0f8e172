package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"go-comments-service/internal/middleware"
	"go-comments-service/internal/model"
	"go-comments-service/internal/service"
	"go-comments-service/pkg/apierror"
)

type CommentHandler struct {
	service *service.CommentService
}

func NewCommentHandler(service *service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	author, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized("authentication required"))
		return
	}

	var payload model.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body", ""))
		return
	}

	comment, err := h.service.Create(r.Context(), payload, author)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, comment, nil)
}

func (h *CommentHandler) MyComments(w http.ResponseWriter, r *http.Request) {
	author, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized("authentication required"))
		return
	}

	comments, err := h.service.ListMine(r.Context(), author)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, comments, &model.Meta{Total: len(comments)})
}

func (h *CommentHandler) Search(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.Search(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, comments, &model.Meta{Total: len(comments)})
}

func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, commentID, ok := commentRequest(w, r)
	if !ok {
		return
	}

	comment, err := h.service.Get(r.Context(), commentID, actor)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, comment, nil)
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	actor, commentID, ok := commentRequest(w, r)
	if !ok {
		return
	}

	var payload model.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body", ""))
		return
	}

	comment, err := h.service.Update(r.Context(), commentID, payload, actor)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, comment, nil)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, commentID, ok := commentRequest(w, r)
	if !ok {
		return
	}

	comment, err := h.service.Delete(r.Context(), commentID, actor)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, comment, nil)
}

func commentRequest(w http.ResponseWriter, r *http.Request) (model.AuthUser, int64, bool) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized("authentication required"))
		return model.AuthUser{}, 0, false
	}

	commentID, err := strconv.ParseInt(chi.URLParam(r, "comment_id"), 10, 64)
	if err != nil {
		writeError(w, apierror.BadRequest("invalid comment id", "comment_id"))
		return model.AuthUser{}, 0, false
	}

	return actor, commentID, true
}
