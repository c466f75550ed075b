// Package common defines sentinel errors shared across the service
// layers. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrorEmailExists = errors.New("email already exists")

	// Session store errors.
	ErrorSessionNotFound = errors.New("session not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal           = errors.New("internal error")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// ErrorForbidden is returned when an authenticated caller acts on
	// a resource that belongs to a different user.
	ErrorForbidden = errors.New("forbidden")

	// ErrorInvalidHash is returned when a stored password hash cannot
	// be parsed. It signals data corruption, not a failed verification.
	ErrorInvalidHash = errors.New("invalid password hash")
)

// ValidationError reports a malformed input field. It is expected and
// non-fatal; delivery layers map it to a client error with the field
// name preserved.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
