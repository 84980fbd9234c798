package services

import (
	"errors"
	"fmt"
)

var (
	// ErrLandingNotFound is returned when no landing matches an id or URL path.
	ErrLandingNotFound = errors.New("landing page not found")
	// ErrURLTaken is returned when a landing URL path is already claimed.
	ErrURLTaken = errors.New("url path already taken")
)

// ValidationError marks a client-correctable input error. Its message is safe
// to surface verbatim in a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
