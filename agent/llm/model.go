package llm

import (
	"context"
	"errors"
	"fmt"
)

const (
	ProviderGemini string = "gemini"
	ProviderOpenAI string = "openai"

	DefaultProvider    string  = ProviderGemini
	DefaultGeminiModel string  = "gemini-pro"
	DefaultOpenAIModel string  = "gpt-4o-mini"
	DefaultTemperature float32 = 0.7
)

// Model generates text for a fully rendered prompt.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ModelFunc adapts a plain function to Model.
type ModelFunc func(ctx context.Context, prompt string) (string, error)

func (f ModelFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

var (
	// ErrConfiguration is matched by every ConfigurationError.
	ErrConfiguration = errors.New("llm configuration error")
	// ErrEmptyResponse reports a completion without any text.
	ErrEmptyResponse = errors.New("empty model response")
)

// ConfigurationError reports a missing or unusable client setting.
type ConfigurationError struct {
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("llm configuration: %s: %s", e.Setting, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// RemoteServiceError wraps a failure returned by the model provider.
type RemoteServiceError struct {
	Provider string
	Err      error
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}
