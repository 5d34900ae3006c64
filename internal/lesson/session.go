package lesson

import (
	"github.com/phrazzld/dualclass-api/internal/domain"
)

// QuizResult is the state of the quiz for the loaded lesson.
type QuizResult string

// Quiz results
const (
	QuizUnanswered QuizResult = ""
	QuizCorrect    QuizResult = "correct"
	QuizIncorrect  QuizResult = "incorrect"
)

// Session is the view state of one client. The zero value is an empty
// session in dynamic mode.
type Session struct {
	Lesson         *domain.Lesson
	Mode           domain.LessonStepMode
	SelectedOption string
	QuizResult     QuizResult
	RevealedError  *domain.ErrorState
	BadgeUnlocked  bool
	Logs           []LogEntry
}

// StepMode returns the session mode, defaulting to dynamic.
func (s Session) StepMode() domain.LessonStepMode {
	if s.Mode == "" {
		return domain.ModeDynamic
	}
	return s.Mode
}

// Action is an event applied to a Session by Reduce.
type Action interface {
	apply(s Session) Session
}

// LessonLoaded replaces the lesson and clears quiz state.
type LessonLoaded struct {
	Lesson *domain.Lesson
}

// ModeChanged sets the step mode used for the next generation.
type ModeChanged struct {
	Mode domain.LessonStepMode
}

// OptionSelected answers the multiple-choice quiz.
type OptionSelected struct {
	OptionID string
}

// FreeTextAnswered answers the quiz with typed text.
type FreeTextAnswered struct {
	Answer string
}

// LogAdded appends an entry to the session log.
type LogAdded struct {
	Entry LogEntry
}

// Reduce returns the session that results from applying a to s. s is not
// modified. Actions that need a lesson are ignored while none is loaded,
// as are unknown option ids.
func Reduce(s Session, a Action) Session {
	if a == nil {
		return s
	}
	return a.apply(s)
}

func (a LessonLoaded) apply(s Session) Session {
	s.Lesson = a.Lesson
	return clearQuiz(s)
}

func (a ModeChanged) apply(s Session) Session {
	if a.Mode == domain.ModeFixed || a.Mode == domain.ModeDynamic {
		s.Mode = a.Mode
	}
	return s
}

func (a OptionSelected) apply(s Session) Session {
	if s.Lesson == nil {
		return s
	}
	outcome, err := EvaluateChoice(&s.Lesson.Result, a.OptionID)
	if err != nil {
		return s
	}

	s.SelectedOption = outcome.OptionID
	s.RevealedError = outcome.ErrorState
	return answered(s, outcome.Correct)
}

func (a FreeTextAnswered) apply(s Session) Session {
	if s.Lesson == nil {
		return s
	}
	s.SelectedOption = ""
	s.RevealedError = nil
	return answered(s, CheckFreeText(a.Answer, s.Lesson.Result.QuizAnswer))
}

func (a LogAdded) apply(s Session) Session {
	logs := make([]LogEntry, len(s.Logs), len(s.Logs)+1)
	copy(logs, s.Logs)
	s.Logs = append(logs, a.Entry)
	return s
}

// answered records a quiz result. The badge stays unlocked across lessons
// once earned.
func answered(s Session, correct bool) Session {
	if correct {
		s.QuizResult = QuizCorrect
		s.BadgeUnlocked = true
		return s
	}
	s.QuizResult = QuizIncorrect
	return s
}

func clearQuiz(s Session) Session {
	s.SelectedOption = ""
	s.QuizResult = QuizUnanswered
	s.RevealedError = nil
	return s
}

// IsCached reports whether a lesson was served from a fixture.
func IsCached(l *domain.Lesson) bool {
	return l != nil && l.Meta.Cached
}
