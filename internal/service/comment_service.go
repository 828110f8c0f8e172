package service

import (
	"context"
	"strings"
	"time"

	"go-comments-service/internal/model"
	"go-comments-service/pkg/apierror"
)

const commentTextMaxLen = 5000

type commentStore interface {
	Create(ctx context.Context, c model.Comment) (model.Comment, error)
	FindByID(ctx context.Context, id int64) (model.Comment, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]model.Comment, error)
	SearchByText(ctx context.Context, keyword string) ([]model.Comment, error)
	Update(ctx context.Context, c model.Comment) error
	Delete(ctx context.Context, id int64) error
}

type recipientStore interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
}

type CommentService struct {
	comments commentStore
	users    recipientStore
}

func NewCommentService(comments commentStore, users recipientStore) *CommentService {
	return &CommentService{comments: comments, users: users}
}

func (s *CommentService) Create(ctx context.Context, in model.CreateCommentRequest, author model.AuthUser) (model.Comment, error) {
	if err := validateCommentText(in.CommentText); err != nil {
		return model.Comment{}, err
	}

	if _, err := s.users.FindByID(ctx, in.UserID); err != nil {
		if isUserNotFound(err) {
			return model.Comment{}, apierror.NotFound("recipient user not found", "user_id")
		}
		return model.Comment{}, err
	}

	return s.comments.Create(ctx, model.Comment{
		CommentText: in.CommentText,
		AuthorID:    author.ID,
		UserID:      in.UserID,
	})
}

// Get returns a single comment, restricted to its author or a superuser.
func (s *CommentService) Get(ctx context.Context, id int64, actor model.AuthUser) (model.Comment, error) {
	return s.loadOwned(ctx, id, actor)
}

// ListMine returns the caller's authored comments; an empty result is
// reported as not found, matching the service's external contract.
func (s *CommentService) ListMine(ctx context.Context, actor model.AuthUser) ([]model.Comment, error) {
	comments, err := s.comments.ListByAuthor(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, apierror.NotFound("no comments found", "")
	}
	return comments, nil
}

func (s *CommentService) Search(ctx context.Context, keyword string) ([]model.Comment, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, apierror.BadRequest("keyword is required", "keyword")
	}

	return s.comments.SearchByText(ctx, keyword)
}

func (s *CommentService) Update(ctx context.Context, id int64, in model.UpdateCommentRequest, actor model.AuthUser) (model.Comment, error) {
	if err := validateCommentText(in.CommentText); err != nil {
		return model.Comment{}, err
	}

	comment, err := s.loadOwned(ctx, id, actor)
	if err != nil {
		return model.Comment{}, err
	}

	now := time.Now().UTC()
	comment.CommentText = in.CommentText
	comment.IsEdited = true
	comment.UpdatedAt = &now

	if err := s.comments.Update(ctx, comment); err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, id int64, actor model.AuthUser) (model.Comment, error) {
	comment, err := s.loadOwned(ctx, id, actor)
	if err != nil {
		return model.Comment{}, err
	}

	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

// loadOwned is the ownership guard: the comment must exist and the actor must
// be its author or a superuser.
func (s *CommentService) loadOwned(ctx context.Context, id int64, actor model.AuthUser) (model.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return model.Comment{}, err
	}

	if comment.AuthorID != actor.ID && !actor.IsSuperuser {
		return model.Comment{}, apierror.Forbidden("cannot view or modify another user's comment")
	}
	return comment, nil
}

func validateCommentText(text string) error {
	if strings.TrimSpace(text) == "" {
		return apierror.BadRequest("comment text is required", "comment_text")
	}
	if len(text) > commentTextMaxLen {
		return apierror.BadRequest("comment text exceeds 5000 characters", "comment_text")
	}
	return nil
}
