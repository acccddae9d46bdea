package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrInvalidInput is returned when a field is blank, oversized or malformed,
	// or when a referenced entity does not exist. It is usually wrapped in a
	// ValidationError naming the offending field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateUsername is returned when registering a username that is
	// already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// ValidationError describes which field failed validation and why.
// It unwraps to the sentinel it was created with, so callers can use
// errors.Is(err, ErrInvalidInput).
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for field. A nil err
// defaults to ErrInvalidInput.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrInvalidInput
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
