package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mechdyane/mechdyane/internal/llm"
)

func validLessonOutput() map[string]any {
	return map[string]any{
		"title":       "Market Research Basics",
		"description": "How to find out what customers want.",
		"content":     "# Market Research\n\nAsk before you build.",
		"difficulty":  "Easy",
		"quiz": []any{
			map[string]any{"id": "q1", "text": "What comes first?", "options": []any{"Asking", "Building"}, "correctIndex": 0, "explanation": "Ask first."},
			map[string]any{"id": "q2", "text": "Who do you ask?", "options": []any{"Friends", "Customers", "Nobody"}, "correctIndex": 1, "explanation": "Customers know."},
		},
	}
}

func withQuestion(out map[string]any, i int, key string, v any) map[string]any {
	quiz := out["quiz"].([]any)
	quiz[i].(map[string]any)[key] = v
	return out
}

func newTestClient(responses ...llm.MockResponse) (*Client, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return NewClient(mock, DefaultConfig(), nil), mock
}

func TestGenerateLessonContent(t *testing.T) {
	c, mock := newTestClient(llm.MockJSON(validLessonOutput()))

	lesson, err := c.GenerateLessonContent(t.Context(), "Marketing", "Market Research Basics", 2)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if lesson.ID == "" {
		t.Error("expected a lesson id")
	}
	if lesson.Domain != "Marketing" || lesson.Topic != "Market Research Basics" {
		t.Errorf("domain/topic = %q/%q", lesson.Domain, lesson.Topic)
	}
	if lesson.Difficulty != Easy {
		t.Errorf("difficulty = %q", lesson.Difficulty)
	}
	if len(lesson.Quiz) != 2 || lesson.Quiz[1].CorrectIndex != 1 {
		t.Fatalf("unexpected quiz: %+v", lesson.Quiz)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != LessonSchema {
		t.Error("expected lesson schema on request")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Marketing", "Market Research Basics", "level 2"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerateLessonContent_Malformed(t *testing.T) {
	tests := []struct {
		name string
		out  map[string]any
	}{
		{"correct index out of range", withQuestion(validLessonOutput(), 0, "correctIndex", 5)},
		{"negative correct index", withQuestion(validLessonOutput(), 1, "correctIndex", -1)},
		{"non-integer correct index", withQuestion(validLessonOutput(), 0, "correctIndex", 0.5)},
		{"duplicate question id", withQuestion(validLessonOutput(), 1, "id", "q1")},
		{"single option", withQuestion(validLessonOutput(), 0, "options", []any{"Only"})},
		{"empty quiz", func() map[string]any {
			out := validLessonOutput()
			out["quiz"] = []any{}
			return out
		}()},
		{"missing field", func() map[string]any {
			out := validLessonOutput()
			delete(out, "content")
			return out
		}()},
		{"bad difficulty", func() map[string]any {
			out := validLessonOutput()
			out["difficulty"] = "Impossible"
			return out
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(llm.MockJSON(tt.out))
			_, err := c.GenerateLessonContent(t.Context(), "Marketing", "Research", 1)
			var mce *MalformedContentError
			if !errors.As(err, &mce) {
				t.Fatalf("expected MalformedContentError, got %v", err)
			}
		})
	}
}

func TestGenerateLessonContent_HugeCorrectIndex(t *testing.T) {
	c, _ := newTestClient(llm.MockJSON(withQuestion(validLessonOutput(), 0, "correctIndex", 1e20)))

	_, err := c.GenerateLessonContent(t.Context(), "Marketing", "Research", 1)
	var mce *MalformedContentError
	if !errors.As(err, &mce) {
		t.Fatalf("expected MalformedContentError, got %v", err)
	}
	if !strings.Contains(mce.Reason, "1e+20") || strings.Contains(mce.Reason, "-9223372036854775808") {
		t.Errorf("reason should report the sent value: %q", mce.Reason)
	}
}

func TestGenerateLessonContent_Truncated(t *testing.T) {
	c, _ := newTestClient(llm.MockResponse{Err: &llm.ErrMaxTokensExceeded{}})

	_, err := c.GenerateLessonContent(t.Context(), "Finance", "Budgeting", 1)
	var mce *MalformedContentError
	if !errors.As(err, &mce) || mce.Reason != "response truncated" {
		t.Fatalf("expected truncation error, got %v", err)
	}
}

func TestGenerateLessonContent_Blocked(t *testing.T) {
	c, _ := newTestClient(llm.MockResponse{Err: &llm.ErrBlocked{}})

	_, err := c.GenerateLessonContent(t.Context(), "Healthcare", "Triage", 1)
	var mce *MalformedContentError
	if !errors.As(err, &mce) || mce.Reason != "response blocked" {
		t.Fatalf("expected blocked error, got %v", err)
	}
}

func TestGenerateLessonContent_Timeout(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: llm.MockJSON(validLessonOutput()).Content,
		Delay:   time.Second,
	})
	cfg := DefaultConfig()
	cfg.Timeout = 20 * time.Millisecond
	c := NewClient(mock, cfg, nil)

	_, err := c.GenerateLessonContent(t.Context(), "Finance", "Budgeting", 1)
	var pte *ProviderTimeoutError
	if !errors.As(err, &pte) {
		t.Fatalf("expected ProviderTimeoutError, got %v", err)
	}
	if pte.After != cfg.Timeout {
		t.Errorf("After = %v, want %v", pte.After, cfg.Timeout)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("expected timeout to match context.DeadlineExceeded")
	}
}

func TestGenerateLessonContent_Unavailable(t *testing.T) {
	c, _ := newTestClient()

	_, err := c.GenerateLessonContent(t.Context(), "Finance", "Budgeting", 1)
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected provider unavailable to pass through, got %v", err)
	}
	var mce *MalformedContentError
	if errors.As(err, &mce) {
		t.Fatal("unavailable provider should not be reported as malformed")
	}
}

func TestRecommend(t *testing.T) {
	c, mock := newTestClient(llm.MockJSON(map[string]any{
		"topics": []any{"  SEO Fundamentals ", "", "Email Campaigns", "   "},
	}))

	topics, err := c.Recommend(t.Context(), []string{"Marketing"}, []string{"Brand Storytelling"})
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(topics) != 2 || topics[0] != "SEO Fundamentals" || topics[1] != "Email Campaigns" {
		t.Fatalf("topics = %q", topics)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Marketing") || !strings.Contains(msg, "Brand Storytelling") {
		t.Errorf("user message missing interests or history:\n%s", msg)
	}
}

func TestRecommend_EmptyInputs(t *testing.T) {
	c, mock := newTestClient(llm.MockJSON(map[string]any{"topics": []any{"Intro to Finance"}}))

	if _, err := c.Recommend(t.Context(), nil, nil); err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "none") {
		t.Error("expected empty lists to render as none")
	}
}

type purposeProvider struct {
	purposes []string
	inner    llm.Provider
}

func (p *purposeProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	p.purposes = append(p.purposes, llm.PurposeFrom(ctx))
	return p.inner.Generate(ctx, req)
}

func (p *purposeProvider) ModelID() string { return "purpose" }

func TestClientSetsPurpose(t *testing.T) {
	pp := &purposeProvider{inner: llm.NewMockProvider(
		llm.MockJSON(validLessonOutput()),
		llm.MockJSON(map[string]any{"topics": []any{"x"}}),
	)}
	c := NewClient(pp, DefaultConfig(), nil)

	_, _ = c.GenerateLessonContent(t.Context(), "Marketing", "Research", 1)
	_, _ = c.Recommend(t.Context(), nil, nil)

	if len(pp.purposes) != 2 || pp.purposes[0] != "lesson" || pp.purposes[1] != "recommend" {
		t.Fatalf("purposes = %v", pp.purposes)
	}
}
