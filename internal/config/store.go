package config

import (
	"errors"
	"fmt"
	"time"
)

// StoreConfig configures the document store connection.
type StoreConfig struct {
	// URI is the MongoDB connection string. Required.
	URI string
	// Database name. Default: "news_editorial"
	Database string
	// MaxPoolSize caps open connections per server. Default: 25
	MaxPoolSize uint64
	// MinPoolSize keeps warm connections. Default: 0
	MinPoolSize uint64
	// ConnectTimeout bounds the initial connect and ping. Default: 10s
	ConnectTimeout time.Duration
	// OpTimeout bounds each repository call. Default: 10s
	OpTimeout time.Duration
}

// LoadStoreConfig reads MONGODB_* variables.
func LoadStoreConfig() (*StoreConfig, error) {
	cfg := &StoreConfig{
		URI:            getEnvString("MONGODB_URI", ""),
		Database:       getEnvString("MONGODB_DATABASE", "news_editorial"),
		MaxPoolSize:    uint64(max(getEnvInt("MONGODB_MAX_POOL_SIZE", 25), 0)),
		MinPoolSize:    uint64(max(getEnvInt("MONGODB_MIN_POOL_SIZE", 0), 0)),
		ConnectTimeout: getEnvDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
		OpTimeout:      getEnvDuration("MONGODB_OP_TIMEOUT", 10*time.Second),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid store configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration correctness.
func (c *StoreConfig) Validate() error {
	if c.URI == "" {
		return errors.New("MONGODB_URI is required")
	}
	if c.Database == "" {
		return errors.New("MONGODB_DATABASE cannot be empty")
	}
	if c.MaxPoolSize == 0 {
		return errors.New("MONGODB_MAX_POOL_SIZE must be positive")
	}
	if c.MinPoolSize > c.MaxPoolSize {
		return errors.New("MONGODB_MIN_POOL_SIZE cannot exceed MONGODB_MAX_POOL_SIZE")
	}
	if c.ConnectTimeout <= 0 {
		return errors.New("MONGODB_CONNECT_TIMEOUT must be positive")
	}
	if c.OpTimeout <= 0 {
		return errors.New("MONGODB_OP_TIMEOUT must be positive")
	}
	return nil
}
