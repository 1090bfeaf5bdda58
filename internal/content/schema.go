package content

import "github.com/mechdyane/mechdyane/internal/llm"

// LessonSchema is the structured output contract for lesson generation.
// Every object lists all its properties as required and forbids extras so
// that strict structured-output modes accept it.
var LessonSchema = &llm.Schema{
	Name:        "lesson-content",
	Description: "A beginner-friendly lesson with markdown content and a multiple-choice quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short lesson title",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "One or two sentence summary of the lesson",
			},
			"content": map[string]any{
				"type":        "string",
				"description": "Detailed markdown content of the lesson",
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"Easy", "Medium", "Hard"},
			},
			"quiz": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":   map[string]any{"type": "string"},
						"text": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"correctIndex": map[string]any{
							"type":        "number",
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{"type": "string"},
					},
					"required":             []any{"id", "text", "options", "correctIndex", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "description", "content", "difficulty", "quiz"},
		"additionalProperties": false,
	},
}

// RecommendSchema wraps the topic list in an object; not every provider's
// structured output mode accepts a bare array at the root.
var RecommendSchema = &llm.Schema{
	Name:        "topic-recommendations",
	Description: "Suggested next topics for the learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topics": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"topics"},
		"additionalProperties": false,
	},
}
