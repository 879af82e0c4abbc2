package session

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrUsernameTaken  = errors.New("username_taken")
	ErrUserNotFound   = errors.New("user_not_found")
	ErrNoSession      = errors.New("no_session")
)
