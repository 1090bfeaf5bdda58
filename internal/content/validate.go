package content

import "strings"

// Validate checks the invariants scoring depends on: a non-empty quiz,
// unique question ids, at least two options per question and an in-range
// CorrectIndex. Violations return *MalformedContentError.
func Validate(l *Lesson) error {
	if l == nil {
		return malformed("no lesson")
	}
	if strings.TrimSpace(l.Title) == "" {
		return malformed("missing title")
	}
	if strings.TrimSpace(l.Content) == "" {
		return malformed("missing content")
	}
	if !l.Difficulty.valid() {
		return malformed("unknown difficulty %q", l.Difficulty)
	}
	if len(l.Quiz) == 0 {
		return malformed("quiz is empty")
	}

	seen := make(map[string]bool, len(l.Quiz))
	for i, q := range l.Quiz {
		if q.ID == "" {
			return malformed("question %d: missing id", i+1)
		}
		if seen[q.ID] {
			return malformed("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		if strings.TrimSpace(q.Text) == "" {
			return malformed("question %q: missing text", q.ID)
		}
		if len(q.Options) < 2 {
			return malformed("question %q: needs at least 2 options, got %d", q.ID, len(q.Options))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return malformed("question %q: correctIndex %d out of range [0,%d)", q.ID, q.CorrectIndex, len(q.Options))
		}
	}
	return nil
}
