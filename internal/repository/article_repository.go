// Package repository declares the persistence ports used by the use cases.
// Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"
	"errors"
	"time"

	"herald/internal/domain/entity"
)

var (
	// ErrInvalidID is returned when an identifier is not in the store's identity format.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrNotMatched is returned by writes whose identifier is well-formed but absent.
	ErrNotMatched = errors.New("no document matched")

	// ErrDuplicateKey is returned when a write violates a unique index (slug).
	ErrDuplicateKey = errors.New("duplicate key")
)

// ArticlePatch is a partial update. Nil fields are left untouched.
// Identity, createdAt and views have no field here and cannot be patched.
type ArticlePatch struct {
	Slug        *string
	Title       *string
	Excerpt     *string
	Content     *string
	Category    *entity.Category
	Image       *string
	Author      *entity.Author
	PublishedAt *time.Time
	Featured    *bool
	Breaking    *bool
	Published   *bool
	Tags        *[]string
	Sources     *[]string
}

// IsEmpty reports whether the patch would change nothing.
func (p ArticlePatch) IsEmpty() bool {
	return p.Slug == nil && p.Title == nil && p.Excerpt == nil && p.Content == nil &&
		p.Category == nil && p.Image == nil && p.Author == nil && p.PublishedAt == nil &&
		p.Featured == nil && p.Breaking == nil && p.Published == nil &&
		p.Tags == nil && p.Sources == nil
}

type ArticleRepository interface {
	// List returns every article, drafts included, newest first.
	List(ctx context.Context) ([]*entity.Article, error)
	// ListByCategory returns published articles in category, newest first.
	ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Article, error)
	// ListFeatured returns at most limit published, featured articles.
	ListFeatured(ctx context.Context, limit int) ([]*entity.Article, error)
	// ListBreaking returns published articles flagged as breaking.
	ListBreaking(ctx context.Context) ([]*entity.Article, error)
	// Get returns (nil, nil) if the article is not found and ErrInvalidID if id is malformed.
	Get(ctx context.Context, id string) (*entity.Article, error)
	// GetBySlug returns (nil, nil) if no article has slug.
	GetBySlug(ctx context.Context, slug string) (*entity.Article, error)
	// ExistsBySlug reports whether another article than excludeID already uses slug.
	// An empty excludeID checks the whole collection.
	ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error)
	// Create stores article and fills in its ID, Views, CreatedAt and UpdatedAt.
	Create(ctx context.Context, article *entity.Article) error
	// Update applies patch and bumps updatedAt. Returns ErrNotMatched when id is absent.
	Update(ctx context.Context, id string, patch ArticlePatch) error
	// Delete removes the article. Returns ErrNotMatched when id is absent.
	Delete(ctx context.Context, id string) error
	// IncrementViews adds one to views atomically. Returns ErrNotMatched when id is absent.
	IncrementViews(ctx context.Context, id string) error
}
