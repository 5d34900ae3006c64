package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
var (
	// ErrMissingFields indicates a request lacks a required field.
	// API layer should map this to HTTP 400 Bad Request.
	ErrMissingFields = errors.New("required fields are missing")

	// ErrInvalidMode indicates an unrecognised lesson step mode.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidMode = errors.New("lesson step mode must be fixed or dynamic")

	// ErrFixtureUnavailable indicates a demo or fallback fixture could not be
	// read or decoded. API layer should map this to HTTP 500.
	ErrFixtureUnavailable = errors.New("lesson fixture unavailable")

	// ErrErrorMirrorFailed indicates error mirror generation failed.
	// API layer should map this to HTTP 500.
	ErrErrorMirrorFailed = errors.New("error mirror generation failed")
)

// LessonServiceError wraps errors from the lesson service with context.
type LessonServiceError struct {
	// Operation is the operation that failed (e.g., "generate", "generate_error_mirror")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for LessonServiceError.
func (e *LessonServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lesson service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("lesson service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *LessonServiceError) Unwrap() error {
	return e.Err
}

// NewLessonServiceError creates a new LessonServiceError.
// Request validation sentinels are returned directly without wrapping.
func NewLessonServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrMissingFields) || errors.Is(err, ErrInvalidMode) {
		return err
	}

	return &LessonServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
