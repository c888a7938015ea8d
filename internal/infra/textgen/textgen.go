// Package textgen adapts hosted language models to a single completion call.
//
// Every provider call runs through a circuit breaker and a bounded retry on
// transient failures, and records per-task generation metrics.
package textgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"herald/internal/config"
	"herald/internal/observability/metrics"
	"herald/internal/resilience/circuitbreaker"
	"herald/internal/resilience/retry"
)

// ErrGeneration is returned when the provider fails or produces no content.
var ErrGeneration = errors.New("text generation failed")

// Prompt is one completion request.
type Prompt struct {
	// Task labels the request in logs and metrics (article, headline, ...).
	Task        string
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// Completer produces text for a prompt.
type Completer interface {
	Complete(ctx context.Context, p Prompt) (string, error)
}

// New builds the Completer selected by cfg.Provider.
func New(cfg *config.TextGenConfig) (Completer, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAI(cfg), nil
	case config.ProviderClaude:
		return NewClaude(cfg), nil
	case config.ProviderNoop:
		return NewNoOp(), nil
	default:
		return nil, fmt.Errorf("unknown text generation provider %q", cfg.Provider)
	}
}

// guard wraps a single provider call with timeout, retry and circuit breaker.
type guard struct {
	provider string
	breaker  *circuitbreaker.CircuitBreaker
	retry    retry.Config
	timeout  time.Duration
}

func newGuard(provider string, cfg *config.TextGenConfig) guard {
	cbCfg := circuitbreaker.TextGenConfig(provider)
	if cfg.CircuitBreaker.MaxRequests > 0 {
		cbCfg.MaxRequests = cfg.CircuitBreaker.MaxRequests
	}
	if cfg.CircuitBreaker.Interval > 0 {
		cbCfg.Interval = cfg.CircuitBreaker.Interval
	}
	if cfg.CircuitBreaker.Timeout > 0 {
		cbCfg.Timeout = cfg.CircuitBreaker.Timeout
	}
	return guard{
		provider: provider,
		breaker:  circuitbreaker.New(cbCfg),
		retry:    retry.TextGenConfig(),
		timeout:  cfg.Timeout,
	}
}

func (g guard) run(ctx context.Context, p Prompt, call func(ctx context.Context) (string, error)) (out string, err error) {
	requestID := uuid.NewString()
	start := time.Now()
	defer func() {
		metrics.RecordGeneration(p.Task, time.Since(start), utf8.RuneCountInString(out), err)
	}()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	slog.InfoContext(ctx, "text generation started",
		slog.String("request_id", requestID),
		slog.String("provider", g.provider),
		slog.String("task", p.Task),
		slog.Int("max_tokens", p.MaxTokens))

	retryErr := retry.WithBackoff(ctx, g.retry, func() error {
		res, cbErr := circuitbreaker.Run(g.breaker, func() (string, error) {
			return call(ctx)
		})
		if cbErr != nil {
			if errors.Is(cbErr, gobreaker.ErrOpenState) || errors.Is(cbErr, gobreaker.ErrTooManyRequests) {
				slog.WarnContext(ctx, "text generation circuit breaker open, request rejected",
					slog.String("provider", g.provider),
					slog.String("state", g.breaker.State().String()))
			}
			return cbErr
		}
		out = res
		return nil
	})
	if retryErr != nil {
		slog.ErrorContext(ctx, "text generation failed",
			slog.String("request_id", requestID),
			slog.String("provider", g.provider),
			slog.String("task", p.Task),
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", retryErr))
		return "", fmt.Errorf("%w: %s %s: %w", ErrGeneration, g.provider, p.Task, retryErr)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("%w: %s returned no content", ErrGeneration, g.provider)
	}

	slog.InfoContext(ctx, "text generation completed",
		slog.String("request_id", requestID),
		slog.String("provider", g.provider),
		slog.String("task", p.Task),
		slog.Int("length", utf8.RuneCountInString(out)),
		slog.Duration("duration", time.Since(start)))
	return out, nil
}
