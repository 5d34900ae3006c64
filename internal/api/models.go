package api

import (
	"fmt"
	"strings"

	"github.com/phrazzld/dualclass-api/internal/domain"
	"github.com/phrazzld/dualclass-api/internal/lesson"
	"github.com/phrazzld/dualclass-api/internal/service"
)

// GenerateRequest defines the payload for POST /api/generate.
type GenerateRequest struct {
	Concept        string `json:"concept"`
	Persona        string `json:"persona"`
	LessonStepMode string `json:"lessonStepMode,omitempty"`
}

// Validate checks the required fields and the step mode.
func (r GenerateRequest) Validate() error {
	if strings.TrimSpace(r.Concept) == "" || strings.TrimSpace(r.Persona) == "" {
		return fmt.Errorf("%w: concept and persona are required", service.ErrMissingFields)
	}
	if _, err := domain.ParseLessonStepMode(r.LessonStepMode); err != nil {
		return fmt.Errorf("%w: %q", service.ErrInvalidMode, r.LessonStepMode)
	}
	return nil
}

// ToDomain converts the payload to a generation request. Validate must
// have passed.
func (r GenerateRequest) ToDomain() domain.GenerationRequest {
	mode, _ := domain.ParseLessonStepMode(r.LessonStepMode)
	return domain.GenerationRequest{
		Concept: r.Concept,
		Persona: r.Persona,
		Mode:    mode,
	}
}

// CheckAnswerRequest defines the payload for POST /api/check-answer. A
// multiple-choice answer sends quiz_options and selected_option_id; a typed
// answer sends answer and quiz_answer. Persona, when set, names the badge
// awarded for a correct answer.
type CheckAnswerRequest struct {
	QuizOptions      []domain.QuizOption `json:"quiz_options,omitempty"`
	ErrorStates      []domain.ErrorState `json:"error_states,omitempty"`
	FallbackError    *domain.ErrorState  `json:"fallback_error,omitempty"`
	SelectedOptionID string              `json:"selected_option_id,omitempty"`
	QuizAnswer       string              `json:"quiz_answer,omitempty"`
	Answer           string              `json:"answer,omitempty"`
	Persona          string              `json:"persona,omitempty"`
}

func (r CheckAnswerRequest) isChoice() bool {
	return strings.TrimSpace(r.SelectedOptionID) != ""
}

// Validate requires a complete choice or a complete typed answer.
func (r CheckAnswerRequest) Validate() error {
	if r.isChoice() {
		if len(r.QuizOptions) == 0 {
			return fmt.Errorf("%w: quiz_options are required", service.ErrMissingFields)
		}
		return nil
	}
	if strings.TrimSpace(r.Answer) == "" || strings.TrimSpace(r.QuizAnswer) == "" {
		return fmt.Errorf("%w: selected_option_id or answer and quiz_answer are required", service.ErrMissingFields)
	}
	return nil
}

func (r CheckAnswerRequest) toLesson() *domain.Lesson {
	return &domain.Lesson{Result: domain.MetaphorResult{
		QuizOptions:   r.QuizOptions,
		QuizAnswer:    r.QuizAnswer,
		ErrorStates:   r.ErrorStates,
		FallbackError: r.FallbackError,
	}}
}

func (r CheckAnswerRequest) action() lesson.Action {
	if r.isChoice() {
		return lesson.OptionSelected{OptionID: r.SelectedOptionID}
	}
	return lesson.FreeTextAnswered{Answer: r.Answer}
}

// CheckAnswerResponse defines the response for POST /api/check-answer.
type CheckAnswerResponse struct {
	OptionID   string             `json:"option_id,omitempty"`
	Correct    bool               `json:"correct"`
	ErrorState *domain.ErrorState `json:"error_state,omitempty"`
	Badge      *Badge             `json:"badge,omitempty"`
}

// Badge is the dual-class badge unlocked by a correct answer.
type Badge struct {
	Title string `json:"title"`
	Emoji string `json:"emoji"`
}
