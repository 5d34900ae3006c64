package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/dualclass-api/internal/api/shared"
	"github.com/phrazzld/dualclass-api/internal/domain"
	"github.com/phrazzld/dualclass-api/internal/lesson"
	"github.com/phrazzld/dualclass-api/internal/service"
)

// User-facing error messages
const (
	MsgInvalidRequest           = "Invalid request format"
	MsgConceptPersonaRequired   = "Concept and persona are required"
	MsgGenerateFailed           = "Failed to generate explanation"
	MsgContextFieldsRequired    = "Missing required context fields"
	MsgErrorMirrorFailed        = "Failed to generate error mirror content"
	MsgMissingFields            = "Missing required fields"
	MsgInvalidMode              = "lessonStepMode must be fixed or dynamic"
	MsgUnknownOption            = "Unknown quiz option"
	MsgCheckAnswerFailed        = "Failed to check answer"
	MsgLessonContentUnavailable = "Lesson content unavailable"
	MsgUnexpected               = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrInvalidMode),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, lesson.ErrUnknownOption),
		errors.Is(err, lesson.ErrNoLesson):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpected
	}

	switch {
	case errors.Is(err, service.ErrMissingFields):
		return MsgMissingFields
	case errors.Is(err, service.ErrInvalidMode):
		return MsgInvalidMode
	case errors.Is(err, lesson.ErrUnknownOption):
		return MsgUnknownOption
	case errors.Is(err, lesson.ErrNoLesson):
		return MsgMissingFields
	case errors.Is(err, domain.ErrValidation):
		return "Invalid lesson data"
	case errors.Is(err, service.ErrErrorMirrorFailed):
		return MsgErrorMirrorFailed
	case errors.Is(err, service.ErrFixtureUnavailable):
		return MsgLessonContentUnavailable
	default:
		return MsgUnexpected
	}
}

// HandleAPIError writes the error response for err. Client errors get the
// safe message for err; server errors get defaultMsg when one is given.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)

	message := GetSafeErrorMessage(err)
	if status >= http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
