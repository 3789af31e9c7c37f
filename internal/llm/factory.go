package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// NewProvider creates a Provider from configuration. The base provider is
// wrapped as caller → tracing → rate limit → logging → base.
func NewProvider(ctx context.Context, cfg Config, log zerolog.Logger) (Provider, error) {
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
	default:
		return nil, &ConfigError{Setting: EnvProvider, Reason: fmt.Sprintf("names unknown provider %q", cfg.Provider)}
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, log)
	limited := WithRateLimit(logged, cfg.RateLimit)
	return WithTracing(limited), nil
}

// NewProviderFromEnv loads configuration from the environment and builds
// the provider chain. It also returns the resolved Config so callers can
// read settings such as Timeout.
func NewProviderFromEnv(ctx context.Context, log zerolog.Logger) (Provider, Config, error) {
	cfg := LoadConfig()
	p, err := NewProvider(ctx, cfg, log)
	if err != nil {
		return nil, cfg, err
	}
	return p, cfg, nil
}
