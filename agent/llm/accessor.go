package llm

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Config selects and parameterizes the remote model.
type Config struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
}

// Factory constructs a client for cfg. It is only called with a non-empty APIKey.
type Factory func(ctx context.Context, cfg Config) (Model, error)

// Accessor lazily constructs one Model and hands the same instance to every caller.
type Accessor struct {
	cfg     Config
	factory Factory

	mu    sync.Mutex
	model Model
}

// NewAccessor returns an accessor for cfg. A nil factory picks one by cfg.Provider.
func NewAccessor(cfg Config, factory Factory) *Accessor {
	if cfg.Provider == "" {
		cfg.Provider = DefaultProvider
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel(cfg.Provider)
	}
	return &Accessor{cfg: cfg, factory: factory}
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(provider string) string {
	if provider == ProviderOpenAI {
		return DefaultOpenAIModel
	}
	return DefaultGeminiModel
}

// CredentialEnv names the environment variable expected to hold the key for provider.
func CredentialEnv(provider string) string {
	if provider == ProviderOpenAI {
		return "OPENAI_API_KEY"
	}
	return "GOOGLE_API_KEY"
}

func (a *Accessor) Config() Config {
	return a.cfg
}

// Handle returns the memoized model, constructing it on first use.
// A failed construction is not cached.
func (a *Accessor) Handle(ctx context.Context) (Model, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.model != nil {
		return a.model, nil
	}
	if strings.TrimSpace(a.cfg.APIKey) == "" {
		return nil, &ConfigurationError{
			Setting: CredentialEnv(a.cfg.Provider),
			Reason:  "api key not found",
		}
	}
	factory := a.factory
	if factory == nil {
		var err error
		if factory, err = providerFactory(a.cfg.Provider); err != nil {
			return nil, err
		}
	}
	model, err := factory(ctx, a.cfg)
	if err != nil {
		return nil, fmt.Errorf("construct %s client: %w", a.cfg.Provider, err)
	}
	a.model = model
	return model, nil
}

// Close releases the cached client when it holds resources.
func (a *Accessor) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.model == nil {
		return nil
	}
	closer, ok := a.model.(io.Closer)
	a.model = nil
	if !ok {
		return nil
	}
	return closer.Close()
}

func providerFactory(provider string) (Factory, error) {
	switch provider {
	case ProviderGemini:
		return NewGemini, nil
	case ProviderOpenAI:
		return NewOpenAI, nil
	default:
		return nil, &ConfigurationError{Setting: "provider", Reason: fmt.Sprintf("unsupported provider %q", provider)}
	}
}
