// Package config loads process configuration from environment variables.
// A .env file, when present, is loaded into the environment by main before
// any loader runs.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// getEnvString returns the value of key or defaultValue when unset or empty.
func getEnvString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// getEnvInt parses key as an integer. Invalid values fall back to defaultValue with a warning.
func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		slog.Warn("invalid integer value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", v),
			slog.Int("default", defaultValue))
		return defaultValue
	}
	return n
}

// getEnvInt64 is getEnvInt for byte sizes and other wide values.
func getEnvInt64(key string, defaultValue int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		slog.Warn("invalid integer value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", v),
			slog.Int64("default", defaultValue))
		return defaultValue
	}
	return n
}

// getEnvDuration parses key with time.ParseDuration ("30s", "1m").
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		slog.Warn("invalid duration value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", v),
			slog.String("default", defaultValue.String()))
		return defaultValue
	}
	return d
}

// getEnvStringList splits a comma-separated value, trimming and dropping empty parts.
func getEnvStringList(key string, defaultValue []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	out := make([]string, 0, strings.Count(v, ",")+1)
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
