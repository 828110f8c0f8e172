package model

import "time"

// UserCreate carries the form-encoded sign-up fields.
type UserCreate struct {
	Email     string
	Password  string
	Username  string
	Birthdate *time.Time
}

// UserUpdate carries the form-encoded profile-update fields. Nil pointers mean
// the field was not submitted and stays untouched.
type UserUpdate struct {
	Email     *string
	Password  *string
	Username  *string
	Birthdate *time.Time
}

type CreateCommentRequest struct {
	CommentText string `json:"comment_text"`
	UserID      int64  `json:"user_id"`
}

type UpdateCommentRequest struct {
	CommentText string `json:"comment_text"`
}
