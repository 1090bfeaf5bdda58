package lesson

import (
	"github.com/google/uuid"
	"github.com/mechdyane/mechdyane/internal/content"
)

// Result is the scored outcome of a finished quiz. It is computed once.
type Result struct {
	Score    int
	Total    int
	XP       int
	Finished bool
}

// Perfect reports whether every question was answered correctly.
func (r Result) Perfect() bool {
	return r.Finished && r.Total > 0 && r.Score == r.Total
}

// ReviewItem is one row of the results review list.
type ReviewItem struct {
	Question   content.Question
	Chosen     int
	ChosenText string
	Correct    bool
}

// Session is the state machine for one lesson. It is not safe for
// concurrent use; the UI loop is its only caller.
type Session struct {
	ID     string
	Domain string
	Topic  string

	state      State
	lesson     *content.Lesson
	answers    map[string]int
	result     Result
	err        error
	onComplete func(Result)
}

// New starts a session in Loading. onComplete, when set, runs exactly once
// when the quiz is submitted.
func New(domain, topic string, onComplete func(Result)) *Session {
	return &Session{
		ID:         uuid.NewString(),
		Domain:     domain,
		Topic:      topic,
		state:      Loading,
		answers:    make(map[string]int),
		onComplete: onComplete,
	}
}

func (s *Session) State() State { return s.state }

// Lesson returns the loaded lesson, or nil before Load.
func (s *Session) Lesson() *content.Lesson { return s.lesson }

// Err returns the failure that moved the session to Unavailable.
func (s *Session) Err() error { return s.err }

// Load delivers the fetched lesson. A lesson that fails validation moves
// the session to Unavailable and the validation error is returned.
func (s *Session) Load(l *content.Lesson) error {
	if s.state != Loading {
		return &TransitionError{From: s.state, Event: EventLoad}
	}
	if err := content.Validate(l); err != nil {
		s.state, s.err = Unavailable, err
		return err
	}
	s.lesson = l
	s.state = Reading
	return nil
}

// Fail records a fetch failure.
func (s *Session) Fail(err error) error {
	if s.state != Loading {
		return &TransitionError{From: s.state, Event: EventFail}
	}
	s.state, s.err = Unavailable, err
	return nil
}

// Retry returns an Unavailable session to Loading.
func (s *Session) Retry() error {
	if s.state != Unavailable {
		return &TransitionError{From: s.state, Event: EventRetry}
	}
	s.state, s.err = Loading, nil
	return nil
}

// StartQuiz moves from Reading to Quiz.
func (s *Session) StartQuiz() error {
	if s.state != Reading {
		return &TransitionError{From: s.state, Event: EventStartQuiz}
	}
	s.state = Quiz
	return nil
}

// Review goes back from Quiz to Reading. Recorded answers are kept.
func (s *Session) Review() error {
	if s.state != Quiz {
		return &TransitionError{From: s.state, Event: EventReview}
	}
	s.state = Reading
	return nil
}

// Answer records option for the question, replacing any earlier choice.
func (s *Session) Answer(questionID string, option int) error {
	if s.state != Quiz {
		return &TransitionError{From: s.state, Event: EventAnswer}
	}
	q, ok := s.question(questionID)
	if !ok {
		return ErrUnknownQuestion
	}
	if option < 0 || option >= len(q.Options) {
		return ErrOptionOutOfRange
	}
	s.answers[questionID] = option
	return nil
}

// Selected returns the recorded answer for a question.
func (s *Session) Selected(questionID string) (int, bool) {
	opt, ok := s.answers[questionID]
	return opt, ok
}

// Answered returns how many questions have an answer.
func (s *Session) Answered() int { return len(s.answers) }

// CanSubmit reports whether every question has an answer.
func (s *Session) CanSubmit() bool {
	return s.state == Quiz && s.lesson != nil && len(s.answers) == len(s.lesson.Quiz)
}

// Submit scores the quiz and moves to Results. A second Submit is a
// TransitionError, so the completion callback never fires twice.
func (s *Session) Submit() (Result, error) {
	if s.state != Quiz {
		return Result{}, &TransitionError{From: s.state, Event: EventSubmit}
	}
	if !s.CanSubmit() {
		return Result{}, ErrIncompleteAnswers
	}

	score := 0
	for _, q := range s.lesson.Quiz {
		if s.answers[q.ID] == q.CorrectIndex {
			score++
		}
	}
	total := len(s.lesson.Quiz)
	s.result = Result{Score: score, Total: total, XP: XP(score, total), Finished: true}
	s.state = Results

	if s.onComplete != nil {
		s.onComplete(s.result)
	}
	return s.result, nil
}

// Result returns the scored result once the session reached Results.
func (s *Session) Result() (Result, bool) {
	return s.result, s.result.Finished
}

// Progress is the fraction shown on the lesson progress bar.
func (s *Session) Progress() float64 {
	switch s.state {
	case Reading:
		return 0.5
	case Quiz:
		return 0.75
	case Results:
		return 1
	}
	return 0
}

// ReviewItems lists each question with the learner's choice. It is empty
// until the quiz is submitted.
func (s *Session) ReviewItems() []ReviewItem {
	if s.state != Results {
		return nil
	}
	items := make([]ReviewItem, 0, len(s.lesson.Quiz))
	for _, q := range s.lesson.Quiz {
		chosen := s.answers[q.ID]
		items = append(items, ReviewItem{
			Question:   q,
			Chosen:     chosen,
			ChosenText: q.Options[chosen],
			Correct:    chosen == q.CorrectIndex,
		})
	}
	return items
}

func (s *Session) question(id string) (content.Question, bool) {
	if s.lesson == nil {
		return content.Question{}, false
	}
	for _, q := range s.lesson.Quiz {
		if q.ID == id {
			return q, true
		}
	}
	return content.Question{}, false
}
