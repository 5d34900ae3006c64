package domain

import "strings"

// ErrorMirrorContext is the finished quiz an error mirror is generated for.
type ErrorMirrorContext struct {
	Persona       string       `json:"persona"        validate:"required"`
	Concept       string       `json:"concept"        validate:"required"`
	MetaphorLogic string       `json:"metaphor_logic"`
	QuizQuestion  string       `json:"quiz_question"  validate:"required"`
	QuizAnswer    string       `json:"quiz_answer"`
	QuizOptions   []QuizOption `json:"quiz_options"   validate:"required,min=1"`
}

// WrongOptions returns the options not marked correct, in input order.
func (c ErrorMirrorContext) WrongOptions() []QuizOption {
	wrong := make([]QuizOption, 0, len(c.QuizOptions))
	for _, o := range c.QuizOptions {
		if !o.IsCorrect {
			wrong = append(wrong, o)
		}
	}
	return wrong
}

// CorrectOption returns the option marked correct.
func (c ErrorMirrorContext) CorrectOption() (QuizOption, bool) {
	return correctOption(c.QuizOptions)
}

// ErrorState explains the misconception behind one wrong quiz option and
// contrasts the wrong and correct connections visually.
type ErrorState struct {
	WrongOptionID           string `json:"wrong_option_id"`
	MisconceptionTitle      string `json:"misconception_title"`
	WrongConnectionVisual   string `json:"wrong_connection_visual"`
	CorrectConnectionVisual string `json:"correct_connection_visual"`
	ExplanationText         string `json:"explanation_text"`
	WrongLabel              string `json:"wrong_label"`
	CorrectLabel            string `json:"correct_label"`
}

// ErrorMirrorResult is the enrichment produced by an error mirror generation.
type ErrorMirrorResult struct {
	ErrorStates   []ErrorState `json:"error_states"`
	FallbackError ErrorState   `json:"fallback_error"`
	WhyText       string       `json:"why_text"`
	WhyImageURL   string       `json:"why_imageUrl"`
}

// ErrorStateFor returns the error state matching the wrong option id.
// Matching ignores case and surrounding whitespace.
func (r *ErrorMirrorResult) ErrorStateFor(optionID string) (ErrorState, bool) {
	return findErrorState(r.ErrorStates, optionID)
}

func findErrorState(states []ErrorState, optionID string) (ErrorState, bool) {
	want := normalizeOptionID(optionID)
	for _, s := range states {
		if normalizeOptionID(s.WrongOptionID) == want {
			return s, true
		}
	}
	return ErrorState{}, false
}

// ReconcileErrorStates returns exactly one error state per wrong option of
// ctx, in option order. States the model returned are matched by
// wrong_option_id; options without a state get a copy of fallback keyed to
// that option. States for unknown or correct options are dropped.
func ReconcileErrorStates(ctx ErrorMirrorContext, states []ErrorState, fallback ErrorState) []ErrorState {
	wrong := ctx.WrongOptions()
	out := make([]ErrorState, 0, len(wrong))
	for _, o := range wrong {
		state, ok := findErrorState(states, o.ID)
		if !ok {
			state = fallback
		}
		state.WrongOptionID = o.ID
		out = append(out, state)
	}
	return out
}

func normalizeOptionID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
