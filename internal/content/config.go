package content

import "time"

// Config holds generation settings for the LLM-backed Client.
type Config struct {
	LessonMaxTokens    int
	RecommendMaxTokens int
	Temperature        float64

	// Timeout bounds each request. Zero disables it.
	Timeout time.Duration
}

// DefaultConfig returns defaults sized for a three-question lesson.
func DefaultConfig() Config {
	return Config{
		LessonMaxTokens:    4096,
		RecommendMaxTokens: 256,
		Temperature:        0.7,
		Timeout:            30 * time.Second,
	}
}
