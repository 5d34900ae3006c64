package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrModel is returned when a call to the model fails at the transport
	// or API level.
	ErrModel = errors.New("language model call failed")

	// ErrInvalidResponse is returned when the model response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrNoImageData is returned when an image call returns no inline image part
	ErrNoImageData = errors.New("no image data in response")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// ParseError reports model text that could not be decoded as JSON, either
// from a fenced block or as a whole.
type ParseError struct {
	// Candidate is the text that was decoded last.
	Candidate string
	// Err is the decoder error for Candidate.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidResponse, e.Err)
}

// Unwrap exposes both ErrInvalidResponse and the decoder error.
func (e *ParseError) Unwrap() []error {
	return []error{ErrInvalidResponse, e.Err}
}
