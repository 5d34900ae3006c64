package lesson

import "errors"

var (
	// ErrUnknownOption is returned when a selected option id is not among
	// the quiz options.
	ErrUnknownOption = errors.New("unknown quiz option")

	// ErrNoLesson is returned when an action needs a loaded lesson.
	ErrNoLesson = errors.New("no lesson loaded")
)
