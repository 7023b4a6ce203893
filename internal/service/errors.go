package service

import "errors"

var (
	// ErrNotFound covers both absent resources and resources owned by
	// another user; callers must not be able to tell these apart.
	ErrNotFound = errors.New("not found")

	ErrEmailTaken         = errors.New("email already registered")
	ErrTagNameTaken       = errors.New("tag name already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
