package textgen

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"herald/internal/config"
	"herald/internal/resilience/retry"
)

// OpenAI completes prompts with the chat completions API.
type OpenAI struct {
	client *openai.Client
	model  string
	guard  guard
}

// NewOpenAI creates an OpenAI completer from cfg.
func NewOpenAI(cfg *config.TextGenConfig) *OpenAI {
	return NewOpenAIWithClient(openai.NewClient(cfg.OpenAIAPIKey), cfg)
}

// NewOpenAIWithClient uses a preconfigured client, e.g. one pointed at a proxy.
func NewOpenAIWithClient(client *openai.Client, cfg *config.TextGenConfig) *OpenAI {
	return &OpenAI{
		client: client,
		model:  cfg.OpenAIModel,
		guard:  newGuard(config.ProviderOpenAI, cfg),
	}
}

// Complete sends p as a system and user message pair.
func (o *OpenAI) Complete(ctx context.Context, p Prompt) (string, error) {
	return o.guard.run(ctx, p, func(ctx context.Context) (string, error) {
		resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: p.System},
				{Role: openai.ChatMessageRoleUser, Content: p.User},
			},
			Temperature: p.Temperature,
			MaxTokens:   p.MaxTokens,
		})
		if err != nil {
			return "", classifyOpenAI(err)
		}
		if len(resp.Choices) == 0 {
			return "", nil
		}
		return resp.Choices[0].Message.Content, nil
	})
}

// classifyOpenAI exposes the HTTP status so transient failures are retried.
func classifyOpenAI(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return fmt.Errorf("openai api error: %w", retry.StatusError(apiErr.HTTPStatusCode, apiErr.Message))
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return fmt.Errorf("openai request error: %w", retry.StatusError(reqErr.HTTPStatusCode, reqErr.Error()))
	}
	return fmt.Errorf("openai api error: %w", err)
}
