package model

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated is returned when the session credential is missing or invalid.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden is returned when the authenticated user lacks the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrDownstreamUnavailable is returned when a storage or payment call times out.
	ErrDownstreamUnavailable = errors.New("downstream unavailable")
)

// ValidationError describes a malformed or rejected client request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
