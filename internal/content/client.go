package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/mechdyane/mechdyane/internal/llm"
	"go.uber.org/zap"
)

// Client is the LLM-backed Provider.
type Client struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// NewClient creates a content client on top of an llm.Provider.
func NewClient(provider llm.Provider, cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{provider: provider, cfg: cfg, log: logger.Named("content")}
}

type lessonOutput struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Content     string           `json:"content"`
	Difficulty  string           `json:"difficulty"`
	Quiz        []questionOutput `json:"quiz"`
}

type questionOutput struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex float64  `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

type recommendOutput struct {
	Topics []string `json:"topics"`
}

// GenerateLessonContent makes a single request for a lesson and rejects
// anything that can't be scored safely.
func (c *Client) GenerateLessonContent(ctx context.Context, domain, topic string, level int) (*Lesson, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeLesson)
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      lessonSystemPrompt,
		Messages:    llm.UserMessage(buildLessonUserMessage(domain, topic, level)),
		Schema:      LessonSchema,
		MaxTokens:   c.cfg.LessonMaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return nil, c.classify(ctx, "lesson generation", err)
	}

	var out lessonOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &MalformedContentError{Reason: "parse lesson response", Err: err}
	}

	lesson, err := out.toLesson(domain, topic)
	if err != nil {
		return nil, err
	}
	if err := Validate(lesson); err != nil {
		return nil, err
	}

	c.log.Debug("lesson generated",
		zap.String("lesson_id", lesson.ID),
		zap.String("domain", domain),
		zap.String("topic", topic),
		zap.Int("questions", len(lesson.Quiz)),
	)
	return lesson, nil
}

// Recommend asks for next-topic suggestions. Blank entries are dropped;
// nothing else is filtered.
func (c *Client) Recommend(ctx context.Context, interests, completedTopics []string) ([]string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeRecommend)
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      recommendSystemPrompt,
		Messages:    llm.UserMessage(buildRecommendUserMessage(interests, completedTopics)),
		Schema:      RecommendSchema,
		MaxTokens:   c.cfg.RecommendMaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return nil, c.classify(ctx, "recommendation", err)
	}

	var out recommendOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &MalformedContentError{Reason: "parse recommendation response", Err: err}
	}
	return cleanTopics(out.Topics), nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.cfg.Timeout)
}

// classify maps provider failures onto the content error types.
func (c *Client) classify(ctx context.Context, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &ProviderTimeoutError{After: c.cfg.Timeout}
	}

	var inv *llm.ErrInvalidResponse
	if errors.As(err, &inv) {
		return &MalformedContentError{Reason: "schema violation", Err: err}
	}
	var maxTok *llm.ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return &MalformedContentError{Reason: "response truncated", Err: err}
	}
	var blocked *llm.ErrBlocked
	if errors.As(err, &blocked) {
		return &MalformedContentError{Reason: "response blocked", Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (o lessonOutput) toLesson(domain, topic string) (*Lesson, error) {
	lesson := &Lesson{
		ID:          uuid.NewString(),
		Domain:      domain,
		Topic:       topic,
		Title:       strings.TrimSpace(o.Title),
		Description: strings.TrimSpace(o.Description),
		Content:     o.Content,
		Difficulty:  Difficulty(o.Difficulty),
		Quiz:        make([]Question, 0, len(o.Quiz)),
	}
	for i, q := range o.Quiz {
		if q.CorrectIndex != math.Trunc(q.CorrectIndex) {
			return nil, malformed("question %d: correctIndex %v is not an integer", i+1, q.CorrectIndex)
		}
		// Range-check before converting so huge values keep their spelling.
		if q.CorrectIndex < 0 || q.CorrectIndex >= float64(len(q.Options)) {
			return nil, malformed("question %d: correctIndex %v out of range [0,%d)", i+1, q.CorrectIndex, len(q.Options))
		}
		lesson.Quiz = append(lesson.Quiz, Question{
			ID:           strings.TrimSpace(q.ID),
			Text:         q.Text,
			Options:      q.Options,
			CorrectIndex: int(q.CorrectIndex),
			Explanation:  q.Explanation,
		})
	}
	return lesson, nil
}

func cleanTopics(topics []string) []string {
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
