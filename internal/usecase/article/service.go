package article

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"herald/internal/domain/entity"
	"herald/internal/observability/metrics"
	"herald/internal/repository"
)

// Featured listing bounds.
const (
	DefaultFeaturedLimit = 5
	MaxFeaturedLimit     = 50
)

// Batch delete bounds.
const (
	MaxBatchSize     = 100
	batchConcurrency = 8
)

// CreateInput represents the input parameters for creating a new article.
// Category is the raw value from the caller; it is canonicalized here.
type CreateInput struct {
	Slug        string
	Title       string
	Excerpt     string
	Content     string
	Category    string
	Image       string
	Author      entity.Author
	PublishedAt *time.Time
	Featured    bool
	Breaking    bool
	// Published defaults to true when nil.
	Published *bool
	Tags      []string
	Sources   []string
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID          string
	Slug        *string
	Title       *string
	Excerpt     *string
	Content     *string
	Category    *string
	Image       *string
	Author      *entity.Author
	PublishedAt *time.Time
	Featured    *bool
	Breaking    *bool
	Published   *bool
	Tags        *[]string
	Sources     *[]string
}

// BatchFailure is one item of a batch delete that failed for a reason other than absence.
type BatchFailure struct {
	ID      string
	Message string
}

// BatchDeleteResult reports the outcome of every requested identifier, in request order.
type BatchDeleteResult struct {
	Deleted  []string
	NotFound []string
	Failed   []BatchFailure
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// List retrieves all articles, drafts included, newest first.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// ListByCategory retrieves published articles of one category.
// Returns a ValidationError if category is not a known category.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]*entity.Article, error) {
	c, err := entity.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	articles, err := s.Repo.ListByCategory(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("list articles by category: %w", err)
	}
	return articles, nil
}

// ListFeatured retrieves published featured articles. A non-positive limit
// means DefaultFeaturedLimit; limits above MaxFeaturedLimit are clamped.
func (s *Service) ListFeatured(ctx context.Context, limit int) ([]*entity.Article, error) {
	switch {
	case limit <= 0:
		limit = DefaultFeaturedLimit
	case limit > MaxFeaturedLimit:
		limit = MaxFeaturedLimit
	}
	articles, err := s.Repo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list featured articles: %w", err)
	}
	return articles, nil
}

// ListBreaking retrieves published articles flagged as breaking.
func (s *Service) ListBreaking(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.ListBreaking(ctx)
	if err != nil {
		return nil, fmt.Errorf("list breaking articles: %w", err)
	}
	return articles, nil
}

// Get retrieves a single article by its ID.
// Returns ErrArticleIDRequired, ErrInvalidArticleID or ErrArticleNotFound.
func (s *Service) Get(ctx context.Context, id string) (*entity.Article, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrArticleIDRequired
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, mapRepoErr("get article", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// GetBySlug retrieves a single article by its slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, &entity.ValidationError{Field: "slug", Message: "is required"}
	}

	article, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Create validates and stores a new article, returning it with its assigned
// identity and timestamps. Every missing required field is reported at once
// through entity.MissingFieldsError.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	art := &entity.Article{
		Slug:      strings.TrimSpace(in.Slug),
		Title:     strings.TrimSpace(in.Title),
		Excerpt:   strings.TrimSpace(in.Excerpt),
		Content:   in.Content,
		Category:  entity.Category(strings.TrimSpace(in.Category)),
		Image:     strings.TrimSpace(in.Image),
		Author:    trimAuthor(in.Author),
		Featured:  in.Featured,
		Breaking:  in.Breaking,
		Published: in.Published == nil || *in.Published,
		Tags:      in.Tags,
		Sources:   in.Sources,
	}
	if in.PublishedAt != nil {
		art.PublishedAt = *in.PublishedAt
	}

	if err := entity.ValidateNewArticle(art); err != nil {
		return nil, err
	}
	c, err := entity.ParseCategory(string(art.Category))
	if err != nil {
		return nil, err
	}
	art.Category = c

	if err := s.ensureSlugFree(ctx, art.Slug, ""); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, mapRepoErr("create article", err)
	}
	metrics.RecordArticleMutation(metrics.OpCreate)
	return art, nil
}

// Update applies only the supplied fields and returns the re-read article.
// Returns ErrNoFieldsToUpdate when nothing would change, and a ValidationError
// when a required field would become empty.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, ErrArticleIDRequired
	}

	patch, err := buildPatch(in)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}

	if patch.Slug != nil {
		if err := s.ensureSlugFree(ctx, *patch.Slug, id); err != nil {
			return nil, err
		}
	}

	if err := s.Repo.Update(ctx, id, patch); err != nil {
		return nil, mapRepoErr("update article", err)
	}
	metrics.RecordArticleMutation(metrics.OpUpdate)
	return s.Get(ctx, id)
}

// Delete removes an article by its ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrArticleIDRequired
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return mapRepoErr("delete article", err)
	}
	metrics.RecordArticleMutation(metrics.OpDelete)
	return nil
}

// DeleteBatch deletes every identifier independently with bounded concurrency.
// There is no rollback: the result lists which identifiers were deleted, which
// did not exist, and which failed. Malformed identifiers are reported as failed.
func (s *Service) DeleteBatch(ctx context.Context, ids []string) (*BatchDeleteResult, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, &entity.ValidationError{Field: "ids", Message: "at least one ID is required"}
	}
	if len(ids) > MaxBatchSize {
		return nil, &entity.ValidationError{
			Field:   "ids",
			Message: fmt.Sprintf("at most %d IDs per batch", MaxBatchSize),
		}
	}

	// 各ゴルーチンは自分の添字にだけ書き込む
	outcomes := make([]error, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			outcomes[i] = s.Delete(gctx, id)
			// 1件の失敗で残りを止めない
			return nil
		})
	}
	_ = g.Wait()

	res := &BatchDeleteResult{Deleted: []string{}, NotFound: []string{}, Failed: []BatchFailure{}}
	for i, err := range outcomes {
		switch {
		case err == nil:
			res.Deleted = append(res.Deleted, ids[i])
		case errors.Is(err, ErrArticleNotFound):
			res.NotFound = append(res.NotFound, ids[i])
		default:
			res.Failed = append(res.Failed, BatchFailure{ID: ids[i], Message: failureMessage(err)})
		}
	}
	metrics.RecordBatchDelete(len(res.Deleted), len(res.NotFound), len(res.Failed))
	return res, nil
}

// IncrementViews adds one view to the article.
func (s *Service) IncrementViews(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrArticleIDRequired
	}
	if err := s.Repo.IncrementViews(ctx, id); err != nil {
		return mapRepoErr("increment views", err)
	}
	metrics.RecordArticleView()
	return nil
}

// RegenerateSlug derives the slug from the current title and stores it.
// The article is returned unchanged when the slug is already up to date.
func (s *Service) RegenerateSlug(ctx context.Context, id string) (*entity.Article, error) {
	art, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	slug := entity.Slugify(art.Title)
	if slug == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "does not produce a usable slug"}
	}
	if slug == art.Slug {
		return art, nil
	}
	if err := s.ensureSlugFree(ctx, slug, art.ID); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, art.ID, repository.ArticlePatch{Slug: &slug}); err != nil {
		return nil, mapRepoErr("regenerate slug", err)
	}
	metrics.RecordArticleMutation(metrics.OpRegenerateSlug)
	return s.Get(ctx, art.ID)
}

func (s *Service) ensureSlugFree(ctx context.Context, slug, excludeID string) error {
	taken, err := s.Repo.ExistsBySlug(ctx, slug, excludeID)
	if err != nil {
		return mapRepoErr("check slug", err)
	}
	if taken {
		return ErrDuplicateSlug
	}
	return nil
}

func buildPatch(in UpdateInput) (repository.ArticlePatch, error) {
	p := repository.ArticlePatch{
		PublishedAt: in.PublishedAt,
		Featured:    in.Featured,
		Breaking:    in.Breaking,
		Published:   in.Published,
		Tags:        in.Tags,
		Sources:     in.Sources,
		Content:     in.Content,
	}

	required := []struct {
		field string
		in    *string
		out   **string
	}{
		{"slug", in.Slug, &p.Slug},
		{"title", in.Title, &p.Title},
		{"excerpt", in.Excerpt, &p.Excerpt},
		{"image", in.Image, &p.Image},
	}
	for _, r := range required {
		if r.in == nil {
			continue
		}
		v := strings.TrimSpace(*r.in)
		if v == "" {
			return p, &entity.ValidationError{Field: r.field, Message: "cannot be empty"}
		}
		*r.out = &v
	}
	if p.Content != nil && strings.TrimSpace(*p.Content) == "" {
		return p, &entity.ValidationError{Field: "content", Message: "cannot be empty"}
	}

	if in.Category != nil {
		c, err := entity.ParseCategory(*in.Category)
		if err != nil {
			return p, err
		}
		p.Category = &c
	}
	if in.Author != nil {
		a := trimAuthor(*in.Author)
		if a.Name == "" {
			return p, &entity.ValidationError{Field: "author", Message: "name cannot be empty"}
		}
		p.Author = &a
	}
	return p, nil
}

// mapRepoErr translates repository sentinels into use case sentinels.
func mapRepoErr(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return ErrInvalidArticleID
	case errors.Is(err, repository.ErrNotMatched):
		return ErrArticleNotFound
	case errors.Is(err, repository.ErrDuplicateKey):
		return ErrDuplicateSlug
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func failureMessage(err error) string {
	if errors.Is(err, ErrInvalidArticleID) {
		return ErrInvalidArticleID.Error()
	}
	return "delete failed"
}

func trimAuthor(a entity.Author) entity.Author {
	return entity.Author{
		Name:   strings.TrimSpace(a.Name),
		Avatar: strings.TrimSpace(a.Avatar),
		Role:   strings.TrimSpace(a.Role),
	}
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
