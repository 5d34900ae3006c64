package domain

import (
	"strings"
)

// LessonStepMode controls how many lesson steps the model is asked for.
type LessonStepMode string

// Supported lesson step modes
const (
	// ModeFixed asks for exactly three lesson steps.
	ModeFixed LessonStepMode = "fixed"
	// ModeDynamic asks for three to five lesson steps.
	ModeDynamic LessonStepMode = "dynamic"
)

// ParseLessonStepMode converts a wire value into a LessonStepMode.
// An empty value defaults to ModeDynamic.
func ParseLessonStepMode(s string) (LessonStepMode, error) {
	switch LessonStepMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeDynamic:
		return ModeDynamic, nil
	case ModeFixed:
		return ModeFixed, nil
	default:
		return "", ErrInvalidMode
	}
}

// StepRange returns the inclusive bounds on lesson step count for the mode.
func (m LessonStepMode) StepRange() (lo, hi int) {
	if m == ModeFixed {
		return 3, 3
	}
	return 3, 5
}

// GenerationRequest is a single user submission asking for a lesson.
type GenerationRequest struct {
	Concept string
	Persona string
	Mode    LessonStepMode
}

// NewGenerationRequest creates a GenerationRequest, rejecting blank
// concepts and personas. An empty mode defaults to ModeDynamic.
func NewGenerationRequest(concept, persona string, mode LessonStepMode) (*GenerationRequest, error) {
	if strings.TrimSpace(concept) == "" {
		return nil, ErrEmptyConcept
	}
	if strings.TrimSpace(persona) == "" {
		return nil, ErrEmptyPersona
	}
	if mode == "" {
		mode = ModeDynamic
	}
	if mode != ModeFixed && mode != ModeDynamic {
		return nil, ErrInvalidMode
	}

	return &GenerationRequest{
		Concept: concept,
		Persona: persona,
		Mode:    mode,
	}, nil
}

// LessonStep is one stage of the explanation, pairing the metaphor world
// with its literal technical counterpart.
type LessonStep struct {
	StepNumber   int    `json:"step_number"`
	Title        string `json:"title"`
	MetaphorText string `json:"metaphor_text"`
	LiteralText  string `json:"literal_text"`
	ImageCallout int    `json:"image_callout"`
}

// MappingPair is a single Rosetta Stone entry.
type MappingPair struct {
	ConceptTerm  string `json:"concept_term"`
	MetaphorTerm string `json:"metaphor_term"`
	Note         string `json:"note,omitempty"`
}

// CalloutPosition is one of the nine cells of the image overlay grid.
type CalloutPosition string

// Overlay grid positions
const (
	PositionTopLeft      CalloutPosition = "top-left"
	PositionTopCenter    CalloutPosition = "top-center"
	PositionTopRight     CalloutPosition = "top-right"
	PositionCenterLeft   CalloutPosition = "center-left"
	PositionCenter       CalloutPosition = "center"
	PositionCenterRight  CalloutPosition = "center-right"
	PositionBottomLeft   CalloutPosition = "bottom-left"
	PositionBottomCenter CalloutPosition = "bottom-center"
	PositionBottomRight  CalloutPosition = "bottom-right"
)

// CalloutPositions lists the grid in reading order.
var CalloutPositions = []CalloutPosition{
	PositionTopLeft, PositionTopCenter, PositionTopRight,
	PositionCenterLeft, PositionCenter, PositionCenterRight,
	PositionBottomLeft, PositionBottomCenter, PositionBottomRight,
}

// IsValid reports whether p is a grid position.
func (p CalloutPosition) IsValid() bool {
	for _, known := range CalloutPositions {
		if p == known {
			return true
		}
	}
	return false
}

// VisualCallout is a numbered annotation overlaid on the generated image.
type VisualCallout struct {
	ID       int             `json:"id"`
	Position CalloutPosition `json:"position"`
	Label    string          `json:"label"`
}

// QuizOption is one answer of the four-option visual challenge.
type QuizOption struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// MetaphorResult is the lesson produced by generation. The error mirror
// fields are empty unless a client sends them back, as check-answer does.
type MetaphorResult struct {
	Persona         string          `json:"persona"`
	Concept         string          `json:"concept"`
	MetaphorLogic   string          `json:"metaphor_logic"`
	ExplanationText string          `json:"explanation_text"`
	ImagePrompt     string          `json:"image_prompt,omitempty"`
	ImageURL        string          `json:"imageUrl,omitempty"`
	VisualStyle     string          `json:"visual_style"`
	QuizQuestion    string          `json:"quiz_question"`
	QuizAnswer      string          `json:"quiz_answer"`
	QuizExplanation string          `json:"quiz_explanation"`
	LessonSteps     []LessonStep    `json:"lesson_steps"`
	MappingPairs    []MappingPair   `json:"mapping_pairs"`
	VisualCallouts  []VisualCallout `json:"visual_callouts"`
	QuizOptions     []QuizOption    `json:"quiz_options"`

	WhyText       string       `json:"why_text,omitempty"`
	WhyImageURL   string       `json:"why_imageUrl,omitempty"`
	ErrorStates   []ErrorState `json:"error_states,omitempty"`
	FallbackError *ErrorState  `json:"fallback_error,omitempty"`
}

// CorrectOption returns the quiz option marked correct.
func (r *MetaphorResult) CorrectOption() (QuizOption, bool) {
	return correctOption(r.QuizOptions)
}

// ErrorMirrorContext builds the input for an error mirror generation from
// a finished result.
func (r *MetaphorResult) ErrorMirrorContext() ErrorMirrorContext {
	options := make([]QuizOption, len(r.QuizOptions))
	copy(options, r.QuizOptions)

	return ErrorMirrorContext{
		Persona:       r.Persona,
		Concept:       r.Concept,
		MetaphorLogic: r.MetaphorLogic,
		QuizQuestion:  r.QuizQuestion,
		QuizAnswer:    r.QuizAnswer,
		QuizOptions:   options,
	}
}

func correctOption(options []QuizOption) (QuizOption, bool) {
	for _, o := range options {
		if o.IsCorrect {
			return o, true
		}
	}
	return QuizOption{}, false
}
