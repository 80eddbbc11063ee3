package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by services. Handlers map them onto HTTP responses.
// A task owned by another user is reported as not found, never as forbidden,
// so callers cannot probe for the existence of foreign records.
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrUserNotFound = errors.New("user not found")

	ErrEmailTaken    = errors.New("email already exists")
	ErrUsernameTaken = errors.New("username already exists")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
)

// ValidationError a field-level constraint failure
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation creates a ValidationError for a single field
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is one of the not-found sentinels
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTaskNotFound) || errors.Is(err, ErrUserNotFound)
}

// IsConflict reports whether err is a uniqueness conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailTaken) || errors.Is(err, ErrUsernameTaken)
}
