package content

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotConfigured is returned when no content provider is available,
// typically because no API key is set.
var ErrNotConfigured = errors.New("content provider not configured")

// MalformedContentError reports a provider response that broke the lesson
// contract: bad JSON, schema violations, or quiz data that can't be scored.
type MalformedContentError struct {
	Reason string
	Err    error
}

func (e *MalformedContentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed content: %s: %v", e.Reason, e.Err)
	}
	return "malformed content: " + e.Reason
}

func (e *MalformedContentError) Unwrap() error { return e.Err }

// ProviderTimeoutError reports that the provider did not answer within
// the configured timeout.
type ProviderTimeoutError struct {
	After time.Duration
}

func (e *ProviderTimeoutError) Error() string {
	return fmt.Sprintf("content provider timed out after %s", e.After)
}

// Unwrap lets errors.Is(err, context.DeadlineExceeded) match.
func (e *ProviderTimeoutError) Unwrap() error { return context.DeadlineExceeded }

func malformed(format string, args ...any) error {
	return &MalformedContentError{Reason: fmt.Sprintf(format, args...)}
}
