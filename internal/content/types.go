// Package content talks to the generative model that writes lessons and
// topic recommendations. Callers depend on the Provider interface; Client
// is the LLM-backed implementation and Fake the deterministic one.
package content

import "context"

// Difficulty grades a lesson.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

func (d Difficulty) valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Lesson is one generated unit of instruction plus its quiz. It is
// immutable once returned by a Provider.
type Lesson struct {
	ID          string
	Domain      string
	Topic       string
	Title       string
	Description string
	Content     string // markdown
	Difficulty  Difficulty
	Quiz        []Question
}

// Question is a multiple-choice quiz item. CorrectIndex always indexes
// Options for a Lesson that passed Validate.
type Question struct {
	ID           string
	Text         string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// Provider is the capability the rest of the app needs from a content
// source.
type Provider interface {
	// GenerateLessonContent produces a validated lesson for topic in domain,
	// pitched at the learner's level.
	GenerateLessonContent(ctx context.Context, domain, topic string, level int) (*Lesson, error)

	// Recommend suggests next topics from the learner's interests and
	// completed lessons. No dedup against completed topics is applied.
	Recommend(ctx context.Context, interests, completedTopics []string) ([]string, error)
}
