// Package feed reads wire service RSS/Atom feeds for the breaking news ticker.
package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/sony/gobreaker"

	"herald/internal/resilience/circuitbreaker"
	"herald/internal/resilience/retry"
)

// Item is one headline from a wire feed.
type Item struct {
	Title       string
	Link        string
	PublishedAt time.Time
}

// WireParser fetches and parses a feed over HTTP.
type WireParser struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	now            func() time.Time
}

// NewWireParser creates a parser. A nil client uses a 30s timeout client.
func NewWireParser(client *http.Client) *WireParser {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &WireParser{
		client:         client,
		circuitBreaker: circuitbreaker.New(circuitbreaker.FeedConfig()),
		retryConfig:    retry.FeedConfig(),
		now:            time.Now,
	}
}

// Parse returns the feed items newest first, with blank titles dropped.
func (p *WireParser) Parse(ctx context.Context, feedURL string) ([]Item, error) {
	var items []Item
	err := retry.WithBackoff(ctx, p.retryConfig, func() error {
		res, err := circuitbreaker.Run(p.circuitBreaker, func() ([]Item, error) {
			return p.doParse(ctx, feedURL)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("wire feed circuit breaker open, request rejected",
					slog.String("url", feedURL),
					slog.String("state", p.circuitBreaker.State().String()))
			}
			return err
		}
		items = res
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}
	return items, nil
}

func (p *WireParser) doParse(ctx context.Context, feedURL string) ([]Item, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "HeraldNewsroomBot/1.0"
	fp.Client = p.client

	f, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		var httpErr gofeed.HTTPError
		if errors.As(err, &httpErr) {
			return nil, retry.StatusError(httpErr.StatusCode, httpErr.Status)
		}
		return nil, err
	}

	items := make([]Item, 0, len(f.Items))
	for _, it := range f.Items {
		title := strings.Join(strings.Fields(it.Title), " ")
		if title == "" {
			continue
		}
		published := p.now()
		if it.PublishedParsed != nil {
			published = *it.PublishedParsed
		} else if it.UpdatedParsed != nil {
			published = *it.UpdatedParsed
		}
		items = append(items, Item{Title: title, Link: it.Link, PublishedAt: published})
	}

	// フィードによっては古い順に並ぶ
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
	return items, nil
}
