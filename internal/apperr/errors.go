package apperr

import "errors"

var (
	// ErrInvalidInput is returned when the input fails domain validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates that the requested resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState indicates the operation is not allowed in the current state (HTTP 409).
	ErrInvalidState = errors.New("invalid state")
	// ErrCodeMismatch indicates a wrong transfer code.
	ErrCodeMismatch = errors.New("transfer code mismatch")
	// ErrConflict indicates a uniqueness conflict.
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized indicates a missing or invalid bearer token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden indicates the caller may not act on the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrTooManyAttempts indicates the confirmation is temporarily locked.
	ErrTooManyAttempts = errors.New("too many attempts")
)
