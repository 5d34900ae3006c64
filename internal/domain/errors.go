package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is usually wrapped in a ValidationError naming the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidMode is returned when a lesson step mode is not recognised.
	ErrInvalidMode = errors.New("invalid lesson step mode")

	// ErrEmptyConcept is returned when a generation request has no concept.
	ErrEmptyConcept = errors.New("concept cannot be empty")

	// ErrEmptyPersona is returned when a generation request has no persona.
	ErrEmptyPersona = errors.New("persona cannot be empty")

	// ErrInvalidLesson is returned when a lesson payload is not a JSON object.
	ErrInvalidLesson = errors.New("invalid lesson payload")
)

// ValidationError describes a single failed invariant on a named field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field. err is the
// sentinel the error unwraps to; nil defaults to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }
