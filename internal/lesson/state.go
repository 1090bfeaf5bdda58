// Package lesson drives one learner through a generated lesson:
// loading, reading, the quiz and the scored results.
package lesson

import (
	"errors"
	"fmt"
)

// State is the phase of a lesson session.
type State int

const (
	Loading     State = iota // Waiting on the content provider
	Reading                  // Lesson content displayed
	Quiz                     // Answering questions
	Results                  // Scored; terminal
	Unavailable              // Fetch failed; Retry goes back to Loading
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Reading:
		return "reading"
	case Quiz:
		return "quiz"
	case Results:
		return "results"
	case Unavailable:
		return "unavailable"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Event names a learner or provider action applied to a Session.
type Event string

const (
	EventLoad      Event = "load"
	EventFail      Event = "fail"
	EventRetry     Event = "retry"
	EventStartQuiz Event = "start-quiz"
	EventReview    Event = "review"
	EventAnswer    Event = "answer"
	EventSubmit    Event = "submit"
)

var (
	// ErrInvalidTransition matches any *TransitionError.
	ErrInvalidTransition = errors.New("invalid lesson transition")

	// ErrIncompleteAnswers is returned by Submit while a question is unanswered.
	ErrIncompleteAnswers = errors.New("not every question has an answer")

	// ErrUnknownQuestion is returned when answering a question id that is
	// not in the quiz.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrOptionOutOfRange is returned when the selected option does not exist.
	ErrOptionOutOfRange = errors.New("option out of range")
)

// TransitionError reports an event that is not allowed in the current state.
type TransitionError struct {
	From  State
	Event Event
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("lesson: cannot %s while %s", e.Event, e.From)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
