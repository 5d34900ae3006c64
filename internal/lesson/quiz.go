package lesson

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/phrazzld/dualclass-api/internal/domain"
)

// minPartialAnswerLength is the shortest answer accepted by containment.
const minPartialAnswerLength = 3

// Outcome is the result of choosing a quiz option.
type Outcome struct {
	OptionID string
	Correct  bool
	// ErrorState explains a wrong choice. It is nil for correct choices and
	// for wrong choices on a lesson without error mirror content.
	ErrorState *domain.ErrorState
}

// EvaluateChoice scores optionID against the result's quiz options. A wrong
// choice carries the error state for that option or, when none matches, a
// copy of the fallback error keyed to the chosen option.
func EvaluateChoice(r *domain.MetaphorResult, optionID string) (Outcome, error) {
	if r == nil {
		return Outcome{}, ErrNoLesson
	}

	id := strings.TrimSpace(optionID)
	for _, o := range r.QuizOptions {
		if !strings.EqualFold(o.ID, id) {
			continue
		}

		out := Outcome{OptionID: o.ID, Correct: o.IsCorrect}
		if o.IsCorrect {
			return out, nil
		}
		out.ErrorState = errorStateFor(r, o.ID)
		return out, nil
	}
	return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownOption, optionID)
}

func errorStateFor(r *domain.MetaphorResult, optionID string) *domain.ErrorState {
	mirror := domain.ErrorMirrorResult{ErrorStates: r.ErrorStates}
	if state, ok := mirror.ErrorStateFor(optionID); ok {
		return &state
	}
	if r.FallbackError == nil {
		return nil
	}
	state := *r.FallbackError
	state.WrongOptionID = optionID
	return &state
}

// CheckFreeText reports whether a typed answer matches the correct answer.
// Both are lowercased and trimmed. An exact match passes, as does either
// containing the other when the typed answer has at least three characters.
func CheckFreeText(userAnswer, correctAnswer string) bool {
	user := normalizeAnswer(userAnswer)
	correct := normalizeAnswer(correctAnswer)

	if user == correct {
		return true
	}
	if utf8.RuneCountInString(user) < minPartialAnswerLength {
		return false
	}
	return strings.Contains(correct, user) || strings.Contains(user, correct)
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
