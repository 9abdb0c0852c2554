package apperrors

import (
	"errors"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed    = errors.New("validation failed")
	ErrMalformedIdentifier = errors.New("invalid ID format")
	ErrBadRequest          = errors.New("bad request")
)

// Alumni errors
var (
	ErrAlumniNotFound     = errors.New("alumni not found")
	ErrEmailAlreadyExists = errors.New("alumni with this email already exists")
)

// Job errors
var (
	ErrJobNotFound     = errors.New("job not found")
	ErrInvalidPostedBy = errors.New("invalid alumni ID for postedBy field")
)

// Event errors
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrRegistrationClosed = errors.New("registration is closed for this event")
	ErrAlreadyRegistered  = errors.New("already registered for this event")
)

// ValidationError carries the itemized field messages collected while
// validating a payload. It unwraps to ErrValidationFailed so callers can
// classify it with errors.Is.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return ErrValidationFailed.Error()
	}
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// Unwrap implements errors.Unwrap
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a ValidationError from itemized messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// MessagesOf extracts the itemized messages if err is a ValidationError.
func MessagesOf(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Messages
	}
	return nil
}
