package repository

import (
	"context"

	"herald/internal/domain/entity"
)

type BreakingNewsRepository interface {
	// ListActive returns active items ordered by descending priority.
	ListActive(ctx context.Context) ([]*entity.BreakingNewsItem, error)
	// Create stores item and fills in its ID and CreatedAt.
	Create(ctx context.Context, item *entity.BreakingNewsItem) error
	// SetActive toggles the active flag. Returns ErrNotMatched when id is absent.
	SetActive(ctx context.Context, id string, active bool) error
}
