package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/nmehta/studysnap/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with event logging. There is no retry
// layer: analysis is a single-shot call and the user resubmits explicitly.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if cfg.Timeout > 0 {
		base = &timeoutProvider{inner: base, timeout: cfg.Timeout}
	}

	if eventRepo != nil {
		return WithLogging(base, cfg.Provider, eventRepo), nil
	}
	return base, nil
}

// timeoutProvider bounds each Generate call with the configured timeout.
type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

func (p *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.inner.Generate(ctx, req)
}

func (p *timeoutProvider) ModelID() string {
	return p.inner.ModelID()
}

// NewProviderFromEnv builds a provider from STUDYSNAP_* environment
// variables, falling back to probing the standard provider API key vars.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}
