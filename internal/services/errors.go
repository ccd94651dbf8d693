package services

import "errors"

// Domain error kinds. Every service operation either succeeds with all
// invariants intact or fails with exactly one of these (wrapped with
// context) and no partial write. Handlers map them to HTTP status codes
// with errors.Is.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrAlreadyJoined      = errors.New("user already joined challenge")
	ErrAlreadyFollowing   = errors.New("already following user")
	ErrSelfFollow         = errors.New("users cannot follow themselves")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
