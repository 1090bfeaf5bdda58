package content

import (
	"context"
	"fmt"
)

// Unconfigured is the Provider used when no model is available. Every
// call fails with ErrNotConfigured, wrapping Cause when set.
type Unconfigured struct {
	Cause error
}

func (u Unconfigured) err() error {
	if u.Cause != nil {
		return fmt.Errorf("%w: %v", ErrNotConfigured, u.Cause)
	}
	return ErrNotConfigured
}

func (u Unconfigured) GenerateLessonContent(context.Context, string, string, int) (*Lesson, error) {
	return nil, u.err()
}

func (u Unconfigured) Recommend(context.Context, []string, []string) ([]string, error) {
	return nil, u.err()
}
