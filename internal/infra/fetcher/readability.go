// Package fetcher extracts the readable text of a source page so it can be
// summarized into a draft.
package fetcher

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"

	"herald/internal/domain/entity"
	"herald/internal/observability/metrics"
	"herald/internal/resilience/circuitbreaker"
	"herald/internal/resilience/retry"
)

// Page is the extracted content of a source page.
type Page struct {
	URL   string
	Title string
	Text  string
}

// ReadabilityFetcher downloads a page and runs it through go-readability.
type ReadabilityFetcher struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retry          retry.Config
	config         Config
}

// NewReadabilityFetcher creates a fetcher with redirect validation and a circuit breaker.
func NewReadabilityFetcher(cfg Config) *ReadabilityFetcher {
	f := &ReadabilityFetcher{
		circuitBreaker: circuitbreaker.New(circuitbreaker.ContentFetchConfig()),
		retry:          retry.FetchConfig(),
		config:         cfg,
	}
	f.client = &http.Client{
		Timeout: cfg.Timeout * 2,
		Transport: &http.Transport{
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= f.config.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", ErrTooManyRedirects, len(via))
			}
			if err := f.validate(req.URL.String()); err != nil {
				return fmt.Errorf("redirect target rejected: %w", err)
			}
			return nil
		},
	}
	return f
}

// Fetch returns the readable text of rawURL.
func (f *ReadabilityFetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	if err := f.validate(rawURL); err != nil {
		return nil, err
	}

	start := time.Now()
	var page *Page
	err := retry.WithBackoff(ctx, f.retry, func() error {
		p, err := circuitbreaker.Run(f.circuitBreaker, func() (*Page, error) {
			return f.doFetch(ctx, rawURL)
		})
		if err != nil {
			return err
		}
		page = p
		return nil
	})
	metrics.RecordContentFetch(time.Since(start), err == nil)
	if err != nil {
		slog.WarnContext(ctx, "source fetch failed",
			slog.String("url", rawURL),
			slog.Any("error", err))
		return nil, err
	}
	return page, nil
}

func (f *ReadabilityFetcher) validate(rawURL string) error {
	if f.config.DenyPrivateIPs {
		if err := entity.ValidateSourceURL(rawURL); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidURL, err)
		}
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	return nil
}

func (f *ReadabilityFetcher) doFetch(ctx context.Context, rawURL string) (*Page, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if f.config.UserAgent != "" {
		req.Header.Set("User-Agent", f.config.UserAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: request exceeded %v", ErrTimeout, f.config.Timeout)
		}
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Err != nil {
			return nil, urlErr.Err
		}
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, retry.StatusError(resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.config.MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if int64(len(body)) > f.config.MaxBodySize {
		return nil, fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, f.config.MaxBodySize)
	}

	pageURL := resp.Request.URL
	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoContent, err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return nil, ErrNoContent
	}
	return &Page{URL: pageURL.String(), Title: strings.TrimSpace(article.Title), Text: text}, nil
}
