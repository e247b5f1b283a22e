package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Domain errors
var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrCourseNotFound      = errors.New("course not found")
	ErrCredentialNotFound  = errors.New("credential not found")
	ErrAdminNotFound       = errors.New("admin not found")
	ErrAdminAlreadyExists  = errors.New("admin already exists")

	// ErrDuplicateIdentifier is the store rejecting an insert on the unique
	// index of a public identifier. Credential IDs are generated without a
	// pre-check, so this is the safety net for the (theoretical) collision.
	ErrDuplicateIdentifier = errors.New("public identifier already exists")

	// ErrRenderFailed covers certificate rendering failures: engine launch,
	// page load, or PDF capture.
	ErrRenderFailed = errors.New("certificate rendering failed")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}
