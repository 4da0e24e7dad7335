// ABOUTME: Error types and handling for the briefs library
// ABOUTME: Classifies core failures so callers can branch without importing core packages

package briefs

import (
	"context"
	"errors"
	"fmt"

	coreerrors "newsbrief-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates bad caller input
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeNetwork indicates the feed host could not be reached or answered badly
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// Common errors
var (
	// ErrNoSources is returned by Articles when the client has no sources
	ErrNoSources = &Error{Type: ErrorTypeConfiguration, Message: "no feed sources configured", Cause: coreerrors.ErrNoSources}

	// ErrInvalidOption is wrapped by every option that rejects its argument
	ErrInvalidOption = NewError(ErrorTypeValidation, "invalid option")
)

func invalidOption(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidOption, fmt.Sprintf(format, args...))
}

// classify wraps a core error in a library Error, keeping the cause chain
func classify(err error, message string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case coreerrors.IsValidation(err):
		return &Error{Type: ErrorTypeValidation, Message: message, Cause: err}
	case coreerrors.IsExternalAPI(err):
		return &Error{Type: ErrorTypeNetwork, Message: message, Cause: err}
	default:
		return &Error{Type: ErrorTypeInternal, Message: message, Cause: err}
	}
}

func isType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	return isType(err, ErrorTypeNetwork)
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return isType(err, ErrorTypeConfiguration)
}
