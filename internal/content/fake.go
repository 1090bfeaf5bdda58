package content

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// LessonRequest records one GenerateLessonContent call on a Fake.
type LessonRequest struct {
	Domain string
	Topic  string
	Level  int
}

// Fake is a deterministic Provider. With no hooks set it serves
// DemoLesson and DefaultTopics, which also backs the offline "mock"
// provider setting.
type Fake struct {
	// LessonFunc overrides lesson generation. Its result still goes
	// through Validate.
	LessonFunc func(domain, topic string, level int) (*Lesson, error)

	Topics       []string
	RecommendErr error

	mu             sync.Mutex
	lessonCalls    []LessonRequest
	recommendCalls int
}

// DefaultTopics is what a zero Fake recommends.
var DefaultTopics = []string{"Brand Storytelling", "Personal Budgeting", "Design Systems"}

// NewFake returns a Fake serving demo content.
func NewFake() *Fake {
	return &Fake{}
}

func (f *Fake) GenerateLessonContent(ctx context.Context, domain, topic string, level int) (*Lesson, error) {
	f.mu.Lock()
	f.lessonCalls = append(f.lessonCalls, LessonRequest{Domain: domain, Topic: topic, Level: level})
	fn := f.LessonFunc
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		lesson *Lesson
		err    error
	)
	if fn != nil {
		lesson, err = fn(domain, topic, level)
	} else {
		lesson = DemoLesson(domain, topic)
	}
	if err != nil {
		return nil, err
	}
	if err := Validate(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (f *Fake) Recommend(ctx context.Context, _, _ []string) ([]string, error) {
	f.mu.Lock()
	f.recommendCalls++
	topics, rerr := f.Topics, f.RecommendErr
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if rerr != nil {
		return nil, rerr
	}
	if topics == nil {
		topics = DefaultTopics
	}
	return cleanTopics(topics), nil
}

// LessonCalls returns the recorded lesson requests.
func (f *Fake) LessonCalls() []LessonRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]LessonRequest(nil), f.lessonCalls...)
}

// RecommendCalls returns how many times Recommend ran.
func (f *Fake) RecommendCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recommendCalls
}

// DemoLesson builds a fixed three-question lesson for topic. The correct
// answers are options 0, 1 and 2 in order.
func DemoLesson(domain, topic string) *Lesson {
	return &Lesson{
		ID:          uuid.NewString(),
		Domain:      domain,
		Topic:       topic,
		Title:       topic,
		Description: fmt.Sprintf("A quick tour of %s for %s beginners.", topic, domain),
		Content: fmt.Sprintf(`# %s

Think of **%s** like learning a new city: first the main roads, then the shortcuts.

## Key ideas
- Start with the vocabulary.
- Practice with small, real examples.
- Review often.

## Why it matters
Every expert in %s started exactly here.`, topic, topic, domain),
		Difficulty: Easy,
		Quiz: []Question{
			{
				ID:           "q1",
				Text:         fmt.Sprintf("What is the best first step when learning %s?", topic),
				Options:      []string{"Learn the vocabulary", "Skip to advanced material", "Memorize everything at once"},
				CorrectIndex: 0,
				Explanation:  "Vocabulary gives you the map for everything that follows.",
			},
			{
				ID:           "q2",
				Text:         "Which habit helps knowledge stick?",
				Options:      []string{"Cramming once", "Reviewing often", "Avoiding practice"},
				CorrectIndex: 1,
				Explanation:  "Spaced review strengthens memory.",
			},
			{
				ID:           "q3",
				Text:         "What kind of examples are most useful for beginners?",
				Options:      []string{"Abstract theory only", "Huge case studies", "Small, real examples"},
				CorrectIndex: 2,
				Explanation:  "Small real examples connect ideas to practice.",
			},
		},
	}
}
