package retry

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) Config {
	return Config{
		MaxAttempts:    attempts,
		InitialDelay:   5 * time.Millisecond,
		MaxDelay:       20 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

func TestWithBackoff(t *testing.T) {
	tests := []struct {
		name         string
		failures     int
		failWith     error
		maxAttempts  int
		wantAttempts int
		wantErr      bool
	}{
		{"first try", 0, nil, 3, 1, false},
		{"succeeds after retry", 2, StatusError(503, "unavailable"), 3, 3, false},
		{"exhausted", 10, StatusError(500, "boom"), 3, 3, true},
		{"non retryable", 10, StatusError(400, "bad request"), 3, 1, true},
		{"rate limited", 1, StatusError(429, "slow down"), 2, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempts := 0
			err := WithBackoff(context.Background(), fastConfig(tt.maxAttempts), func() error {
				attempts++
				if attempts <= tt.failures {
					return tt.failWith
				}
				return nil
			})

			assert.Equal(t, tt.wantAttempts, attempts)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.failWith)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWithBackoff_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastConfig(5)
	cfg.InitialDelay = time.Second

	attempts := 0
	err := WithBackoff(ctx, cfg, func() error {
		attempts++
		cancel()
		return StatusError(502, "bad gateway")
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", context.DeadlineExceeded, false},
		{"500", StatusError(500, ""), true},
		{"503", StatusError(503, ""), true},
		{"429", StatusError(429, ""), true},
		{"408", StatusError(408, ""), true},
		{"400", StatusError(400, ""), false},
		{"401", StatusError(401, ""), false},
		{"wrapped 502", fmt.Errorf("upstream: %w", StatusError(502, "")), true},
		{"conn refused", syscall.ECONNREFUSED, true},
		{"conn reset", syscall.ECONNRESET, true},
		{"net unreachable", syscall.ENETUNREACH, true},
		{"generic", errors.New("nope"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestPresets(t *testing.T) {
	for name, cfg := range map[string]Config{
		"textgen": TextGenConfig(),
		"feed":    FeedConfig(),
		"fetch":   FetchConfig(),
	} {
		t.Run(name, func(t *testing.T) {
			assert.GreaterOrEqual(t, cfg.MaxAttempts, 2)
			assert.LessOrEqual(t, cfg.InitialDelay, cfg.MaxDelay)
			assert.Equal(t, 2.0, cfg.Multiplier)
		})
	}
}

func TestHTTPError_Error(t *testing.T) {
	assert.Equal(t, "HTTP 500: Internal Server Error", StatusError(500, "Internal Server Error").Error())
}

func TestAddJitter(t *testing.T) {
	d := 100 * time.Millisecond

	assert.Equal(t, d, addJitter(d, 0))

	for i := 0; i < 10; i++ {
		got := addJitter(d, 0.2)
		assert.GreaterOrEqual(t, got, d)
		assert.LessOrEqual(t, got, time.Duration(float64(d)*1.2))
	}
}
