package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a mutation or lookup target is absent
	ErrNotFound = errors.New("not found")
	// ErrFlightCancelled is returned when a cancelled flight is asked to change status
	ErrFlightCancelled = errors.New("flight is cancelled")
	// ErrAlreadyExists is returned when registering a flight key twice
	ErrAlreadyExists = errors.New("already exists")
)

// ValidationError reports malformed input caught before any side effect
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// TransportError wraps a network failure or an unclassified non-2xx response
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is or wraps a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
