package utils

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrRecordNotFound     = errors.New("record not found")
	ErrDatabaseError      = errors.New("database error")
)

// ValidationError carries the single user-facing message for the first
// violated input rule. Validation never aggregates violations.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
