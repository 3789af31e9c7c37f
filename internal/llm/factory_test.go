package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected mock model id, got %q", p.ModelID())
	}
	if _, ok := p.(*TracingProvider); !ok {
		t.Fatalf("expected tracing to be the outermost layer, got %T", p)
	}
}

func TestNewProvider_OpenRouter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openrouter"
	cfg.OpenRouter.APIKey = "sk-or-test"

	p, err := NewProvider(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "google/gemini-2.5-flash" {
		t.Fatalf("unexpected model %q", p.ModelID())
	}
}

func TestNewProvider_MissingKeyFailsFast(t *testing.T) {
	_, err := NewProvider(context.Background(), DefaultConfig(), zerolog.Nop())
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T (%v)", err, err)
	}
	if cfgErr.Setting != EnvGeminiKey {
		t.Fatalf("expected %s, got %s", EnvGeminiKey, cfgErr.Setting)
	}
}

func TestNewProviderFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvProvider, "mock")
	t.Setenv(EnvOracleTimeout, "1s")

	p, cfg, err := NewProviderFromEnv(context.Background(), zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" || cfg.Timeout.String() != "1s" {
		t.Fatalf("unexpected provider/config: %q %s", p.ModelID(), cfg.Timeout)
	}
}
