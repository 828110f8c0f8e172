package service

import (
	"context"
	"strings"
	"time"

	"go-comments-service/internal/model"
)

// fakeUserStore is an in-memory stand-in for the user repository.
type fakeUserStore struct {
	users       map[int64]model.User
	nextID      int64
	updateCalls int
	lastLogins  map[int64]time.Time
}

func newFakeUserStore(users ...model.User) *fakeUserStore {
	s := &fakeUserStore{
		users:      map[int64]model.User{},
		nextID:     1,
		lastLogins: map[int64]time.Time{},
	}
	for _, u := range users {
		s.users[u.ID] = u
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
	}
	return s
}

func (s *fakeUserStore) FindByID(_ context.Context, id int64) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (model.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *fakeUserStore) FindByEmailOrUsername(_ context.Context, email string, username string) (model.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) || strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *fakeUserStore) EmailTaken(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, u := range s.users {
		if u.ID != excludeID && strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) UsernameTaken(_ context.Context, username string, excludeID int64) (bool, error) {
	for _, u := range s.users {
		if u.ID != excludeID && strings.EqualFold(u.Username, username) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) Create(_ context.Context, u model.User) (model.User, error) {
	u.ID = s.nextID
	u.RegisteredAt = time.Now().UTC()
	s.nextID++
	s.users[u.ID] = u
	return u, nil
}

func (s *fakeUserStore) Update(_ context.Context, u model.User) error {
	s.updateCalls++
	if _, ok := s.users[u.ID]; !ok {
		return model.ErrUserNotFound
	}
	s.users[u.ID] = u
	return nil
}

func (s *fakeUserStore) TouchLastLogin(_ context.Context, id int64, at time.Time) error {
	s.lastLogins[id] = at
	return nil
}

// fakeCommentStore is an in-memory stand-in for the comment repository.
type fakeCommentStore struct {
	comments map[int64]model.Comment
	nextID   int64
}

func newFakeCommentStore(comments ...model.Comment) *fakeCommentStore {
	s := &fakeCommentStore{comments: map[int64]model.Comment{}, nextID: 1}
	for _, c := range comments {
		s.comments[c.ID] = c
		if c.ID >= s.nextID {
			s.nextID = c.ID + 1
		}
	}
	return s
}

func (s *fakeCommentStore) Create(_ context.Context, c model.Comment) (model.Comment, error) {
	c.ID = s.nextID
	c.CreatedAt = time.Now().UTC()
	s.nextID++
	s.comments[c.ID] = c
	return c, nil
}

func (s *fakeCommentStore) FindByID(_ context.Context, id int64) (model.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return model.Comment{}, model.ErrCommentNotFound
	}
	return c, nil
}

func (s *fakeCommentStore) ListByAuthor(_ context.Context, authorID int64) ([]model.Comment, error) {
	out := make([]model.Comment, 0)
	for _, c := range s.comments {
		if c.AuthorID == authorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeCommentStore) SearchByText(_ context.Context, keyword string) ([]model.Comment, error) {
	out := make([]model.Comment, 0)
	for _, c := range s.comments {
		if strings.Contains(strings.ToLower(c.CommentText), strings.ToLower(keyword)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeCommentStore) Update(_ context.Context, c model.Comment) error {
	if _, ok := s.comments[c.ID]; !ok {
		return model.ErrCommentNotFound
	}
	s.comments[c.ID] = c
	return nil
}

func (s *fakeCommentStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.comments[id]; !ok {
		return model.ErrCommentNotFound
	}
	delete(s.comments, id)
	return nil
}
