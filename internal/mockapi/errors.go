package mockapi

import "errors"

// Domain errors of the mock backend. Storage errors (repository.ErrNotFound,
// repository.ErrDuplicate) pass through wrapped.
var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidToken    = errors.New("invalid token")
	ErrValidation      = errors.New("validation failed")
	ErrNoBaseline      = errors.New("no baseline learned for instance")
)
