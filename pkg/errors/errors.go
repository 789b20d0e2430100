package errors

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the feedback flow. Each maps to one HTTP status.

var (
	// ErrInvalidInput indicates the submission failed schema validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstream indicates the email provider did not accept the request
	ErrUpstream = errors.New("upstream failure")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal error")
)

// InvalidInputError creates an invalid input error with context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// UpstreamError creates an upstream error carrying the provider's status code
func UpstreamError(service string, statusCode int) error {
	return fmt.Errorf("%s responded with status %d: %w", service, statusCode, ErrUpstream)
}

// InternalError creates an internal error with context
func InternalError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInternal)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
