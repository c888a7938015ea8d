package config

import (
	"fmt"
	"strings"
	"time"
)

// Text generation providers.
const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderNoop   = "noop"
)

// TextGenConfig holds configuration for the text generation adapter.
type TextGenConfig struct {
	// Provider selects the backend: openai, claude or noop. Default: openai
	Provider string

	OpenAIAPIKey string
	// OpenAIModel. Default: "gpt-4"
	OpenAIModel string

	AnthropicAPIKey string
	// ClaudeModel. Default: "claude-sonnet-4-5-20250929"
	ClaudeModel string

	// Timeout bounds one completion including retries. Default: 60s
	Timeout time.Duration

	// CircuitBreaker for provider calls.
	CircuitBreaker CircuitBreakerConfig
}

// CircuitBreakerConfig for provider resilience.
type CircuitBreakerConfig struct {
	// MaxRequests in half-open state.
	MaxRequests uint32
	// Interval for clearing failure counts.
	Interval time.Duration
	// Timeout before transitioning from open to half-open.
	Timeout time.Duration
}

// LoadTextGenConfig loads provider settings. The API key of the chosen provider is required.
func LoadTextGenConfig() (*TextGenConfig, error) {
	cfg := &TextGenConfig{
		Provider:        strings.ToLower(getEnvString("TEXTGEN_PROVIDER", ProviderOpenAI)),
		OpenAIAPIKey:    getEnvString("OPENAI_API_KEY", ""),
		OpenAIModel:     getEnvString("OPENAI_MODEL", "gpt-4"),
		AnthropicAPIKey: getEnvString("ANTHROPIC_API_KEY", ""),
		ClaudeModel:     getEnvString("CLAUDE_MODEL", "claude-sonnet-4-5-20250929"),
		Timeout:         getEnvDuration("TEXTGEN_TIMEOUT", 60*time.Second),
		CircuitBreaker: CircuitBreakerConfig{
			MaxRequests: uint32(max(getEnvInt("TEXTGEN_CB_MAX_REQUESTS", 1), 0)),
			Interval:    getEnvDuration("TEXTGEN_CB_INTERVAL", time.Minute),
			Timeout:     getEnvDuration("TEXTGEN_CB_TIMEOUT", 60*time.Second),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid text generation configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration correctness.
func (c *TextGenConfig) Validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for provider %q", c.Provider)
		}
		if c.OpenAIModel == "" {
			return fmt.Errorf("OPENAI_MODEL cannot be empty")
		}
	case ProviderClaude:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for provider %q", c.Provider)
		}
		if c.ClaudeModel == "" {
			return fmt.Errorf("CLAUDE_MODEL cannot be empty")
		}
	case ProviderNoop:
	default:
		return fmt.Errorf("TEXTGEN_PROVIDER must be one of openai, claude, noop (got %q)", c.Provider)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("TEXTGEN_TIMEOUT must be positive")
	}
	if c.CircuitBreaker.MaxRequests == 0 {
		return fmt.Errorf("TEXTGEN_CB_MAX_REQUESTS must be positive")
	}
	if c.CircuitBreaker.Interval <= 0 {
		return fmt.Errorf("TEXTGEN_CB_INTERVAL must be positive")
	}
	if c.CircuitBreaker.Timeout <= 0 {
		return fmt.Errorf("TEXTGEN_CB_TIMEOUT must be positive")
	}
	return nil
}
