package textgen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"herald/internal/config"
	"herald/internal/resilience/retry"
)

// Claude completes prompts with the Anthropic messages API.
type Claude struct {
	client anthropic.Client
	model  string
	guard  guard
}

// NewClaude creates a Claude completer from cfg. Extra options are passed to the SDK client.
func NewClaude(cfg *config.TextGenConfig, opts ...option.RequestOption) *Claude {
	opts = append([]option.RequestOption{
		option.WithAPIKey(cfg.AnthropicAPIKey),
		// リトライは guard 側で行う
		option.WithMaxRetries(0),
	}, opts...)
	return &Claude{
		client: anthropic.NewClient(opts...),
		model:  cfg.ClaudeModel,
		guard:  newGuard(config.ProviderClaude, cfg),
	}
}

// Complete sends p.System as the system prompt and p.User as the only message.
func (c *Claude) Complete(ctx context.Context, p Prompt) (string, error) {
	return c.guard.run(ctx, p, func(ctx context.Context) (string, error) {
		msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:       anthropic.Model(c.model),
			MaxTokens:   int64(p.MaxTokens),
			Temperature: anthropic.Float(float64(p.Temperature)),
			System:      []anthropic.TextBlockParam{{Text: p.System}},
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(p.User)),
			},
		})
		if err != nil {
			return "", classifyClaude(err)
		}

		var b strings.Builder
		for _, block := range msg.Content {
			if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
				b.WriteString(tb.Text)
			}
		}
		return b.String(), nil
	})
}

func classifyClaude(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("claude api error: %w", retry.StatusError(apiErr.StatusCode, http.StatusText(apiErr.StatusCode)))
	}
	return fmt.Errorf("claude api error: %w", err)
}
