package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/dualclass-api/internal/api/shared"
	"github.com/phrazzld/dualclass-api/internal/domain"
	"github.com/phrazzld/dualclass-api/internal/lesson"
	"github.com/phrazzld/dualclass-api/internal/platform/logger"
	"github.com/phrazzld/dualclass-api/internal/service"
)

// LessonHandler handles lesson generation HTTP requests
type LessonHandler struct {
	lessonService service.LessonService
	logger        *slog.Logger
}

// NewLessonHandler creates a new LessonHandler
func NewLessonHandler(lessonService service.LessonService, logger *slog.Logger) *LessonHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LessonHandler{
		lessonService: lessonService,
		logger:        logger.With("component", "lesson_handler"),
	}
}

// Generate handles POST /api/generate requests
func (h *LessonHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		message := MsgConceptPersonaRequired
		if errors.Is(err, service.ErrInvalidMode) {
			message = MsgInvalidMode
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, message, err)
		return
	}

	result, err := h.lessonService.Generate(r.Context(), req.ToDomain())
	if err != nil {
		HandleAPIError(w, r, err, MsgGenerateFailed)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("lesson served",
		"cached", result.Meta.Cached,
		"fallback", result.Meta.Fallback)
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GenerateErrorMirror handles POST /api/generate-error-mirror requests
func (h *LessonHandler) GenerateErrorMirror(w http.ResponseWriter, r *http.Request) {
	var req domain.ErrorMirrorContext
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgContextFieldsRequired, err)
		return
	}

	result, err := h.lessonService.GenerateErrorMirror(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, MsgErrorMirrorFailed)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// CheckAnswer handles POST /api/check-answer requests
func (h *LessonHandler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	var req CheckAnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgMissingFields, err)
		return
	}

	s := lesson.Reduce(lesson.Session{}, lesson.LessonLoaded{Lesson: req.toLesson()})
	s = lesson.Reduce(s, req.action())
	if s.QuizResult == lesson.QuizUnanswered {
		err := fmt.Errorf("%w: %q", lesson.ErrUnknownOption, req.SelectedOptionID)
		HandleAPIError(w, r, err, MsgCheckAnswerFailed)
		return
	}

	resp := CheckAnswerResponse{
		OptionID:   s.SelectedOption,
		Correct:    s.QuizResult == lesson.QuizCorrect,
		ErrorState: s.RevealedError,
	}
	if persona := strings.TrimSpace(req.Persona); s.BadgeUnlocked && persona != "" {
		resp.Badge = &Badge{Title: lesson.BadgeTitle(persona), Emoji: lesson.BadgeEmoji(persona)}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
