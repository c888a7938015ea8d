// Package draft generates editorial copy (article bodies, headlines, excerpts,
// breaking news blurbs, summaries and opinion pieces) with a language model.
//
// Identical inputs always trigger a new provider call; nothing is cached.
package draft

import (
	"context"
	"fmt"
	"strings"

	"herald/internal/domain/entity"
	"herald/internal/infra/fetcher"
	"herald/internal/infra/textgen"
)

// ContentFetcher extracts the readable text of a source page.
type ContentFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*fetcher.Page, error)
}

type Service struct {
	Gen     textgen.Completer
	Fetcher ContentFetcher
}

// Article writes a full news article about topic.
func (s *Service) Article(ctx context.Context, topic, category string) (string, error) {
	if err := required("topic", topic); err != nil {
		return "", err
	}
	if err := required("category", category); err != nil {
		return "", err
	}
	return s.complete(ctx, articlePrompt(topic, category))
}

// Headline proposes a headline for an article body.
func (s *Service) Headline(ctx context.Context, body string) (string, error) {
	if err := required("body", body); err != nil {
		return "", err
	}
	return s.complete(ctx, headlinePrompt(body))
}

// Excerpt writes a two to three sentence teaser for an article body.
func (s *Service) Excerpt(ctx context.Context, body string) (string, error) {
	if err := required("body", body); err != nil {
		return "", err
	}
	return s.complete(ctx, excerptPrompt(body))
}

// BreakingNews writes a single sentence alert.
func (s *Service) BreakingNews(ctx context.Context, about string) (string, error) {
	if err := required("context", about); err != nil {
		return "", err
	}
	return s.complete(ctx, breakingPrompt(about))
}

// Summary condenses an article body.
func (s *Service) Summary(ctx context.Context, body string, length SummaryLength) (string, error) {
	if err := required("body", body); err != nil {
		return "", err
	}
	return s.complete(ctx, summaryPrompt(TaskSummary, body, length))
}

// Opinion writes an opinion column on topic from the given stance.
func (s *Service) Opinion(ctx context.Context, topic, stance string) (string, error) {
	if err := required("topic", topic); err != nil {
		return "", err
	}
	if err := required("stance", stance); err != nil {
		return "", err
	}
	return s.complete(ctx, opinionPrompt(topic, stance))
}

// SummarizeSource fetches a source page and summarizes its readable text.
func (s *Service) SummarizeSource(ctx context.Context, rawURL string, length SummaryLength) (string, error) {
	if s.Fetcher == nil {
		return "", fmt.Errorf("source fetcher not configured")
	}
	page, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", fmt.Errorf("fetch source: %w", err)
	}
	body := truncateRunes(page.Text, sourceTextRunes)
	if page.Title != "" {
		body = page.Title + "\n\n" + body
	}
	return s.complete(ctx, summaryPrompt(TaskSource, body, length))
}

func (s *Service) complete(ctx context.Context, p textgen.Prompt) (string, error) {
	out, err := s.Gen.Complete(ctx, p)
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("%w: %s produced no content", textgen.ErrGeneration, p.Task)
	}
	return out, nil
}

func required(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return &entity.ValidationError{Field: field, Message: "cannot be blank"}
	}
	return nil
}
