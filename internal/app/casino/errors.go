package casino

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid_request")
	ErrUserNotFound      = errors.New("user_not_found")
	ErrChallengeNotFound = errors.New("challenge_not_found")
	ErrNoChallenge       = errors.New("no_challenge_available")
	ErrInsufficientFunds = errors.New("insufficient_funds")
)
