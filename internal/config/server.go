package config

import (
	"errors"
	"fmt"
	"time"
)

// ServerConfig configures the HTTP API process.
type ServerConfig struct {
	Addr            string
	Version         string
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
	// AllowedOrigins is the CORS whitelist. Empty disables CORS headers.
	AllowedOrigins []string
	LogLevel       string
}

// LoadServerConfig reads HTTP_ADDR, VERSION, SHUTDOWN_TIMEOUT, MAX_BODY_BYTES,
// CORS_ALLOWED_ORIGINS and LOG_LEVEL.
func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Addr:            getEnvString("HTTP_ADDR", ":8080"),
		Version:         getEnvString("VERSION", "dev"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		MaxBodyBytes:    getEnvInt64("MAX_BODY_BYTES", 1<<20),
		AllowedOrigins:  getEnvStringList("CORS_ALLOWED_ORIGINS", nil),
		LogLevel:        getEnvString("LOG_LEVEL", "info"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration correctness.
func (c *ServerConfig) Validate() error {
	if c.Addr == "" {
		return errors.New("HTTP_ADDR cannot be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if c.MaxBodyBytes <= 0 {
		return errors.New("MAX_BODY_BYTES must be positive")
	}
	return nil
}
