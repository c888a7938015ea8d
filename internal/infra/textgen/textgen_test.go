package textgen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herald/internal/config"
	"herald/internal/resilience/retry"
)

func testConfig(provider string) *config.TextGenConfig {
	return &config.TextGenConfig{
		Provider:        provider,
		OpenAIAPIKey:    "sk-test",
		OpenAIModel:     "gpt-4",
		AnthropicAPIKey: "ak-test",
		ClaudeModel:     "claude-sonnet-4-5-20250929",
		Timeout:         5 * time.Second,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     time.Minute,
		},
	}
}

func fastRetry() retry.Config {
	return retry.Config{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2}
}

var headlinePrompt = Prompt{
	Task:        "headline",
	System:      "You are a news editor.",
	User:        "Create a headline",
	Temperature: 0.7,
	MaxTokens:   100,
}

/* ───────── OpenAI ───────── */

func newTestOpenAI(t *testing.T, handler http.HandlerFunc) *OpenAI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	oc := openai.DefaultConfig("sk-test")
	oc.BaseURL = srv.URL + "/v1"
	o := NewOpenAIWithClient(openai.NewClientWithConfig(oc), testConfig(config.ProviderOpenAI))
	o.guard.retry = fastRetry()
	return o
}

func TestOpenAI_Complete(t *testing.T) {
	var got openai.ChatCompletionRequest
	o := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"  Markets Rally on Rate Cut  "}}]}`))
	})

	out, err := o.Complete(context.Background(), headlinePrompt)

	require.NoError(t, err)
	assert.Equal(t, "Markets Rally on Rate Cut", out)
	assert.Equal(t, "gpt-4", got.Model)
	assert.Equal(t, 100, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 0.001)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Equal(t, "You are a news editor.", got.Messages[0].Content)
	assert.Equal(t, "Create a headline", got.Messages[1].Content)
}

func TestOpenAI_Complete_Errors(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantAttempts int32
	}{
		{"unauthorized is not retried", 401, `{"error":{"message":"bad key","type":"invalid_request_error"}}`, 1},
		{"server error is retried", 500, `{"error":{"message":"boom","type":"server_error"}}`, 3},
		{"empty choices", 200, `{"id":"c1","choices":[]}`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attempts atomic.Int32
			o := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
				attempts.Add(1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := o.Complete(context.Background(), headlinePrompt)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrGeneration)
			assert.Equal(t, tt.wantAttempts, attempts.Load())
		})
	}
}

func TestOpenAI_Complete_RecoversAfterTransientError(t *testing.T) {
	var attempts atomic.Int32
	o := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":{"message":"overloaded"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	})

	out, err := o.Complete(context.Background(), headlinePrompt)

	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, int32(2), attempts.Load())
}

/* ───────── Claude ───────── */

func newTestClaude(t *testing.T, handler http.HandlerFunc) *Claude {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClaude(testConfig(config.ProviderClaude), option.WithBaseURL(srv.URL))
	c.guard.retry = fastRetry()
	return c
}

func TestClaude_Complete(t *testing.T) {
	var got map[string]any
	c := newTestClaude(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "ak-test", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-sonnet-4-5-20250929",
			"content":[{"type":"text","text":"Storm Hits Coast"}],"stop_reason":"end_turn",
			"usage":{"input_tokens":10,"output_tokens":4}}`))
	})

	out, err := c.Complete(context.Background(), headlinePrompt)

	require.NoError(t, err)
	assert.Equal(t, "Storm Hits Coast", out)
	assert.Equal(t, "claude-sonnet-4-5-20250929", got["model"])
	assert.EqualValues(t, 100, got["max_tokens"])
	assert.InDelta(t, 0.7, got["temperature"], 0.001)
	system, ok := got["system"].([]any)
	require.True(t, ok)
	require.Len(t, system, 1)
	assert.Equal(t, "You are a news editor.", system[0].(map[string]any)["text"])
}

func TestClaude_Complete_BadRequest(t *testing.T) {
	var attempts atomic.Int32
	c := newTestClaude(t, func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"max_tokens too large"}}`))
	})

	_, err := c.Complete(context.Background(), headlinePrompt)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGeneration)
	var httpErr *retry.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestClaude_Complete_EmptyContent(t *testing.T) {
	c := newTestClaude(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","content":[],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":0}}`))
	})

	_, err := c.Complete(context.Background(), headlinePrompt)

	assert.ErrorIs(t, err, ErrGeneration)
}

/* ───────── NoOp / New ───────── */

func TestNoOp_Complete(t *testing.T) {
	n := NewNoOp()

	out, err := n.Complete(context.Background(), Prompt{User: "short", MaxTokens: 10})
	require.NoError(t, err)
	assert.Equal(t, "short", out)

	out, err = n.Complete(context.Background(), Prompt{User: "abcdefghijkl", MaxTokens: 2})
	require.NoError(t, err)
	assert.Equal(t, "abcdefgh...", out)

	_, err = n.Complete(context.Background(), Prompt{})
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestNew(t *testing.T) {
	tests := []struct {
		provider string
		want     any
		wantErr  bool
	}{
		{config.ProviderOpenAI, &OpenAI{}, false},
		{config.ProviderClaude, &Claude{}, false},
		{config.ProviderNoop, &NoOp{}, false},
		{"gemini", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			c, err := New(testConfig(tt.provider))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, c)
		})
	}
}
