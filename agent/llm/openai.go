package llm

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIModel generates text through the chat completions endpoint.
type OpenAIModel struct {
	client      openai.Client
	model       string
	temperature float32
}

// NewOpenAI is the Factory for ProviderOpenAI.
func NewOpenAI(_ context.Context, cfg Config) (Model, error) {
	options := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		options = append(options, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIModel{
		client:      openai.NewClient(options...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}, nil
}

func (o *OpenAIModel) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionNewParams{
		Model:    o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
	}
	req.Temperature = openai.Float(float64(o.temperature))
	resp, err := o.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return "", &RemoteServiceError{Provider: ProviderOpenAI, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &RemoteServiceError{Provider: ProviderOpenAI, Err: ErrEmptyResponse}
	}
	return resp.Choices[0].Message.Content, nil
}
