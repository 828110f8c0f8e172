package model

import "errors"

var (
	// User related errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	// Comment related errors
	ErrCommentNotFound = errors.New("comment not found")
)
