// Package breakingnews manages the priority-ordered alerts shown in the site ticker.
package breakingnews

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"herald/internal/domain/entity"
	"herald/internal/infra/feed"
	"herald/internal/observability/metrics"
	"herald/internal/repository"
)

const (
	// MaxTextLength is the longest alert accepted, in runes.
	MaxTextLength = 280
	// DefaultImportMax caps how many feed entries one import adds.
	DefaultImportMax = 10

	importConcurrency = 4
)

// Origins reported to metrics.
const (
	OriginManual = "manual"
	OriginFeed   = "feed"
)

// FeedParser reads headlines from a wire feed.
type FeedParser interface {
	Parse(ctx context.Context, feedURL string) ([]feed.Item, error)
}

// ImportResult reports what an ImportFeed call did.
type ImportResult struct {
	Added   []*entity.BreakingNewsItem
	Skipped int
	Failed  []ImportFailure
}

// ImportFailure is a headline that could not be stored.
type ImportFailure struct {
	Text    string
	Message string
}

type Service struct {
	Repo repository.BreakingNewsRepository
	Feed FeedParser
}

// ListActive returns active items, highest priority first.
func (s *Service) ListActive(ctx context.Context) ([]*entity.BreakingNewsItem, error) {
	items, err := s.Repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active breaking news: %w", err)
	}
	return items, nil
}

// Add stores a new active item. A zero priority means entity.DefaultBreakingNewsPriority.
func (s *Service) Add(ctx context.Context, text string, priority int) (*entity.BreakingNewsItem, error) {
	item, err := newItem(text, priority)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create breaking news: %w", err)
	}
	metrics.RecordBreakingNewsAdded(OriginManual, 1)
	return item, nil
}

// Deactivate hides an item from the ticker without deleting it.
func (s *Service) Deactivate(ctx context.Context, id string) error {
	if id == "" {
		return ErrItemIDRequired
	}
	if err := s.Repo.SetActive(ctx, id, false); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return ErrInvalidItemID
		case errors.Is(err, repository.ErrNotMatched):
			return ErrItemNotFound
		}
		return fmt.Errorf("deactivate breaking news: %w", err)
	}
	return nil
}

// ImportFeed adds up to max headlines from a wire feed as active items.
// Headlines whose text is already active are skipped. A store failure on one
// headline is reported in Failed and does not stop the others.
func (s *Service) ImportFeed(ctx context.Context, feedURL string, priority, max int) (*ImportResult, error) {
	if s.Feed == nil {
		return nil, errors.New("breaking news feed parser not configured")
	}
	if err := entity.ValidateSourceURL(feedURL); err != nil {
		return nil, err
	}
	if max <= 0 {
		max = DefaultImportMax
	}

	start := time.Now()
	defer func() { metrics.RecordFeedImport(time.Since(start)) }()

	entries, err := s.Feed.Parse(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("import breaking news feed: %w", err)
	}

	active, err := s.Repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active breaking news: %w", err)
	}
	seen := make(map[string]struct{}, len(active))
	for _, it := range active {
		seen[normalize(it.Text)] = struct{}{}
	}

	res := &ImportResult{}
	var pending []*entity.BreakingNewsItem
	for _, e := range entries {
		if len(pending) == max {
			break
		}
		text := truncate(e.Title, MaxTextLength)
		key := normalize(text)
		if _, dup := seen[key]; dup {
			res.Skipped++
			continue
		}
		seen[key] = struct{}{}
		item, err := newItem(text, priority)
		if err != nil {
			res.Skipped++
			continue
		}
		pending = append(pending, item)
	}

	// 各ゴルーチンは自分の添字にだけ書き込む
	outcomes := make([]error, len(pending))

	var g errgroup.Group
	g.SetLimit(importConcurrency)
	for i, item := range pending {
		g.Go(func() error {
			outcomes[i] = s.Repo.Create(ctx, item)
			// 1件の失敗で残りを止めない
			return nil
		})
	}
	_ = g.Wait()

	res.Added = []*entity.BreakingNewsItem{}
	res.Failed = []ImportFailure{}
	for i, err := range outcomes {
		if err == nil {
			res.Added = append(res.Added, pending[i])
			continue
		}
		slog.WarnContext(ctx, "failed to store imported breaking news",
			slog.String("text", pending[i].Text),
			slog.Any("error", err))
		res.Failed = append(res.Failed, ImportFailure{Text: pending[i].Text, Message: "failed to store item"})
	}

	metrics.RecordBreakingNewsAdded(OriginFeed, len(res.Added))
	slog.InfoContext(ctx, "breaking news feed imported",
		slog.String("url", feedURL),
		slog.Int("added", len(res.Added)),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", len(res.Failed)))
	return res, nil
}

func newItem(text string, priority int) (*entity.BreakingNewsItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &entity.ValidationError{Field: "text", Message: "text is required"}
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return nil, &entity.ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("text must not exceed %d characters", MaxTextLength),
		}
	}
	if priority < 0 {
		return nil, &entity.ValidationError{Field: "priority", Message: "priority must not be negative"}
	}
	if priority == 0 {
		priority = entity.DefaultBreakingNewsPriority
	}
	return &entity.BreakingNewsItem{Text: text, Priority: priority, Active: true}, nil
}

func normalize(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n-1])) + "…"
}
