package model

import "time"

type Comment struct {
	ID          int64      `json:"id"`
	CommentText string     `json:"comment_text"`
	AuthorID    int64      `json:"author_id"`
	UserID      int64      `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	IsEdited    bool       `json:"is_edited"`
}
