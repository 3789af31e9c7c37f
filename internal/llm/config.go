package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvProvider        = "SCORECAST_LLM_PROVIDER"
	EnvAnthropicKey    = "SCORECAST_ANTHROPIC_API_KEY"
	EnvAnthropicModel  = "SCORECAST_ANTHROPIC_MODEL"
	EnvOpenAIKey       = "SCORECAST_OPENAI_API_KEY"
	EnvOpenAIModel     = "SCORECAST_OPENAI_MODEL"
	EnvOpenAIBaseURL   = "SCORECAST_OPENAI_BASE_URL"
	EnvGeminiKey       = "SCORECAST_GEMINI_API_KEY"
	EnvGeminiModel     = "SCORECAST_GEMINI_MODEL"
	EnvOpenRouterKey   = "SCORECAST_OPENROUTER_API_KEY"
	EnvOpenRouterModel = "SCORECAST_OPENROUTER_MODEL"
	EnvOracleTimeout   = "SCORECAST_ORACLE_TIMEOUT"
	EnvRateLimitRPS    = "SCORECAST_RATE_LIMIT_RPS"
	EnvRateLimitBurst  = "SCORECAST_RATE_LIMIT_BURST"
)

// DefaultOracleTimeout bounds an oracle call when no override is set.
const DefaultOracleTimeout = 5 * time.Second

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock"
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	RateLimit  RateLimitConfig

	// Timeout bounds a single oracle call end to end. Default: 5s.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-2.5-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.5-flash"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RateLimitConfig throttles outbound oracle calls. A zero
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2,
			Burst:             4,
		},
		Timeout: DefaultOracleTimeout,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. Malformed numeric values are kept as-is
// in the returned Config so Validate can report them.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv(EnvProvider); p != "" {
		cfg.Provider = p
	}

	setString(&cfg.Anthropic.APIKey, EnvAnthropicKey)
	setString(&cfg.Anthropic.Model, EnvAnthropicModel)

	setString(&cfg.OpenAI.APIKey, EnvOpenAIKey)
	setString(&cfg.OpenAI.Model, EnvOpenAIModel)
	setString(&cfg.OpenAI.BaseURL, EnvOpenAIBaseURL)

	setString(&cfg.Gemini.APIKey, EnvGeminiKey)
	setString(&cfg.Gemini.Model, EnvGeminiModel)

	setString(&cfg.OpenRouter.APIKey, EnvOpenRouterKey)
	setString(&cfg.OpenRouter.Model, EnvOpenRouterModel)

	if v := os.Getenv(EnvOracleTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			d = -1
		}
		cfg.Timeout = d
	}
	if v := os.Getenv(EnvRateLimitRPS); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			f = -1
		}
		cfg.RateLimit.RequestsPerSecond = f
	}
	if v := os.Getenv(EnvRateLimitBurst); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			n = -1
		}
		cfg.RateLimit.Burst = n
	}

	return cfg
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic → OpenRouter) and returns base with the
// first provider whose key is found selected. API_KEY is accepted as a
// Gemini key. Returns (base, false) if none found.
func DiscoverConfig(base Config) (Config, bool) {
	cfg := base

	for _, key := range []string{"GEMINI_API_KEY", "API_KEY"} {
		if k := os.Getenv(key); k != "" {
			cfg.Provider = "gemini"
			cfg.Gemini.APIKey = k
			return cfg, true
		}
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return base, false
}

// LoadConfig reads the environment. When no provider is chosen explicitly
// and the selected provider has no key, standard key variables are probed.
func LoadConfig() Config {
	cfg := ConfigFromEnv()
	if os.Getenv(EnvProvider) != "" || cfg.apiKey() != "" {
		return cfg
	}
	if discovered, ok := DiscoverConfig(cfg); ok {
		return discovered
	}
	return cfg
}

func (c Config) apiKey() string {
	switch c.Provider {
	case "anthropic":
		return c.Anthropic.APIKey
	case "openai":
		return c.OpenAI.APIKey
	case "gemini":
		return c.Gemini.APIKey
	case "openrouter":
		return c.OpenRouter.APIKey
	}
	return ""
}

// ModelName returns the configured model for the selected provider.
func (c Config) ModelName() string {
	switch c.Provider {
	case "anthropic":
		return c.Anthropic.Model
	case "openai":
		return c.OpenAI.Model
	case "gemini":
		return c.Gemini.Model
	case "openrouter":
		return c.OpenRouter.Model
	case "mock":
		return "mock"
	}
	return ""
}

// Validate checks that the selected provider has its required API key set
// and that the numeric settings are usable. Failures are *ConfigError.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return &ConfigError{Setting: EnvAnthropicKey, Reason: "is required for the anthropic provider"}
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return &ConfigError{Setting: EnvOpenAIKey, Reason: "is required for the openai provider"}
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return &ConfigError{Setting: EnvGeminiKey, Reason: "is required for the gemini provider"}
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return &ConfigError{Setting: EnvOpenRouterKey, Reason: "is required for the openrouter provider"}
		}
	case "mock":
		// No API key needed.
	default:
		return &ConfigError{Setting: EnvProvider, Reason: fmt.Sprintf("names unknown provider %q", c.Provider)}
	}

	if c.Timeout <= 0 {
		return &ConfigError{Setting: EnvOracleTimeout, Reason: "must be a positive duration"}
	}
	if c.RateLimit.RequestsPerSecond < 0 {
		return &ConfigError{Setting: EnvRateLimitRPS, Reason: "must be a non-negative number"}
	}
	if c.RateLimit.RequestsPerSecond > 0 && c.RateLimit.Burst < 1 {
		return &ConfigError{Setting: EnvRateLimitBurst, Reason: "must be at least 1"}
	}
	return nil
}
