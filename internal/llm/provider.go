package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured JSON from a prompt. Lesson and
// recommendation generation both go through it.
type Provider interface {
	// Generate sends req and returns the model output. With a Schema set
	// the provider uses its native structured output mode and Content is
	// validated against the schema before it is returned.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model requests are sent to.
	ModelID() string
}

// Request is one prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema constrains the response. Nil means raw text.
	Schema *Schema

	MaxTokens int

	// Temperature in 0..1. Zero keeps the provider default.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserMessage is shorthand for a single-turn conversation.
func UserMessage(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

// Schema is a JSON Schema the response must satisfy.
type Schema struct {
	// Name is kebab-case, e.g. "lesson-content". It also keys the
	// compiled validator cache.
	Name        string
	Description string
	Definition  map[string]any
}

// StopReason is the provider finish reason, normalized.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
	// StopBlocked covers refusals and safety or recitation filters.
	StopBlocked StopReason = "blocked"
)

type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string // model that actually served the request
	StopReason StopReason
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish turns a raw completion into a Response. Truncated and blocked
// completions are errors, and schema requests are validated here so every
// adapter applies the same rules.
func finish(req Request, content json.RawMessage, stop StopReason, usage Usage, model string) (*Response, error) {
	switch stop {
	case StopMaxTokens:
		return nil, &ErrMaxTokensExceeded{Content: content}
	case StopBlocked:
		return nil, &ErrBlocked{Content: content}
	}
	if req.Schema != nil {
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	return &Response{
		Content:    content,
		Usage:      usage,
		Model:      model,
		StopReason: stop,
	}, nil
}

// resolveModel maps a friendly alias to a model ID. Unknown names pass
// through so full model IDs work too.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
