package fetcher

import (
	"fmt"
	"time"
)

// Config controls source page extraction.
type Config struct {
	// Timeout bounds a single HTTP request. Default: 10s
	Timeout time.Duration

	// MaxBodySize is enforced while reading, not from Content-Length. Default: 10MB
	MaxBodySize int64

	// MaxRedirects followed; each target is validated again. Default: 5
	MaxRedirects int

	// DenyPrivateIPs rejects loopback, private and link-local targets.
	// Should always be true in production. Default: true
	DenyPrivateIPs bool

	// UserAgent sent with every request.
	UserAgent string
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:        10 * time.Second,
		MaxBodySize:    10 * 1024 * 1024,
		MaxRedirects:   5,
		DenyPrivateIPs: true,
		UserAgent:      "HeraldNewsroomBot/1.0",
	}
}

// Validate checks the limits are sane.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	minBody, maxBody := int64(1024), int64(100*1024*1024)
	if c.MaxBodySize < minBody || c.MaxBodySize > maxBody {
		return fmt.Errorf("max body size must be between %d and %d bytes, got %d", minBody, maxBody, c.MaxBodySize)
	}
	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be between 0 and 10, got %d", c.MaxRedirects)
	}
	return nil
}
