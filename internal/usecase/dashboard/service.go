package dashboard

import (
	"context"
	"fmt"

	"herald/internal/domain/entity"
	"herald/internal/observability/metrics"
	"herald/internal/repository"
)

// Overview is the admin dashboard payload: the filtered list and the stats of the full list.
type Overview struct {
	Articles []*entity.Article
	Stats    Stats
}

// Service builds admin overviews.
type Service struct {
	Repo repository.ArticleRepository
}

// Overview fetches all articles once, then filters and aggregates in memory.
// Stats always describe the unfiltered collection.
func (s *Service) Overview(ctx context.Context, c Criteria) (*Overview, error) {
	all, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("overview: %w", err)
	}
	metrics.UpdateArticlesTotal(len(all))

	return &Overview{
		Articles: Filter(all, c),
		Stats:    ComputeStats(all),
	}, nil
}
