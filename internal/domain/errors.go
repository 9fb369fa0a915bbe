package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnknownField       = errors.New("unknown submission field")
	ErrSubmissionLocked   = errors.New("submission is completed and locked")
	ErrInvalidTransition  = errors.New("illegal status transition")
	ErrPersistence        = errors.New("persistence failure")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
)
