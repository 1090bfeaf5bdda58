package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and logging middleware. recorder may be nil to skip event recording.
func NewProvider(ctx context.Context, cfg Config, logger *zap.Logger, recorder EventRecorder) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → base
	logged := WithLogging(base, cfg.Provider, logger, recorder)
	return WithRetry(logged, cfg.Retry, logger), nil
}

// NewProviderFromEnv resolves configuration from the environment and
// builds the provider. It fails when no provider has a usable key.
func NewProviderFromEnv(ctx context.Context, logger *zap.Logger, recorder EventRecorder) (Provider, Config, error) {
	cfg, ok := ResolveConfig()
	if !ok {
		if err := cfg.Validate(); err != nil {
			return nil, cfg, err
		}
		return nil, cfg, fmt.Errorf("no LLM API key found (set GEMINI_API_KEY or MECHDYANE_LLM_PROVIDER)")
	}
	p, err := NewProvider(ctx, cfg, logger, recorder)
	return p, cfg, err
}
