package article_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"herald/internal/domain/entity"
	"herald/internal/repository"
)

/* ───────── スタブ実装 ───────── */

// インメモリ ArticleRepository。ID は 24 桁の16進数。
type stubRepo struct {
	mu     sync.Mutex
	data   map[string]*entity.Article
	nextID int
	clock  time.Time
	err    error
}

func newStub() *stubRepo {
	return &stubRepo{
		data:  map[string]*entity.Article{},
		clock: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func isHex24(id string) bool {
	if len(id) != 24 {
		return false
	}
	for _, r := range id {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			return false
		}
	}
	return true
}

func copyArticle(a *entity.Article) *entity.Article {
	c := *a
	c.Tags = append([]string(nil), a.Tags...)
	c.Sources = append([]string(nil), a.Sources...)
	return &c
}

func (s *stubRepo) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *stubRepo) seed(a entity.Article) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	a.ID = fmt.Sprintf("%024x", s.nextID)
	a.CreatedAt = s.tick()
	a.UpdatedAt = a.CreatedAt
	if a.PublishedAt.IsZero() {
		a.PublishedAt = a.CreatedAt
	}
	s.data[a.ID] = &a
	return a.ID
}

func (s *stubRepo) snapshot(id string) *entity.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.data[id]
	if !ok {
		return nil
	}
	return copyArticle(a)
}

func (s *stubRepo) filter(keep func(*entity.Article) bool) ([]*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := []*entity.Article{}
	for _, a := range s.data {
		if keep(a) {
			out = append(out, copyArticle(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PublishedAt.After(out[j].PublishedAt) })
	return out, nil
}

// --- ArticleRepository を満たす ---

func (s *stubRepo) List(_ context.Context) ([]*entity.Article, error) {
	return s.filter(func(*entity.Article) bool { return true })
}

func (s *stubRepo) ListByCategory(_ context.Context, c entity.Category) ([]*entity.Article, error) {
	return s.filter(func(a *entity.Article) bool { return a.Category == c })
}

func (s *stubRepo) ListFeatured(_ context.Context, limit int) ([]*entity.Article, error) {
	out, err := s.filter(func(a *entity.Article) bool { return a.Featured })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, err
}

func (s *stubRepo) ListBreaking(_ context.Context) ([]*entity.Article, error) {
	return s.filter(func(a *entity.Article) bool { return a.Breaking })
}

func (s *stubRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	if !isHex24(id) {
		return nil, repository.ErrInvalidID
	}
	return s.snapshot(id), nil
}

func (s *stubRepo) GetBySlug(_ context.Context, slug string) (*entity.Article, error) {
	out, err := s.filter(func(a *entity.Article) bool { return a.Slug == slug })
	if err != nil || len(out) == 0 {
		return nil, err
	}
	return out[0], nil
}

func (s *stubRepo) ExistsBySlug(_ context.Context, slug, excludeID string) (bool, error) {
	out, err := s.filter(func(a *entity.Article) bool { return a.Slug == slug && a.ID != excludeID })
	return len(out) > 0, err
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	a.ID = s.seed(*a)
	stored := s.snapshot(a.ID)
	a.CreatedAt, a.UpdatedAt, a.PublishedAt = stored.CreatedAt, stored.UpdatedAt, stored.PublishedAt
	return nil
}

func (s *stubRepo) Update(_ context.Context, id string, p repository.ArticlePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if !isHex24(id) {
		return repository.ErrInvalidID
	}
	a, ok := s.data[id]
	if !ok {
		return repository.ErrNotMatched
	}
	setIf(&a.Slug, p.Slug)
	setIf(&a.Title, p.Title)
	setIf(&a.Excerpt, p.Excerpt)
	setIf(&a.Content, p.Content)
	setIf(&a.Category, p.Category)
	setIf(&a.Image, p.Image)
	setIf(&a.Author, p.Author)
	setIf(&a.PublishedAt, p.PublishedAt)
	setIf(&a.Featured, p.Featured)
	setIf(&a.Breaking, p.Breaking)
	setIf(&a.Published, p.Published)
	setIf(&a.Tags, p.Tags)
	setIf(&a.Sources, p.Sources)
	a.UpdatedAt = s.tick()
	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func (s *stubRepo) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if !isHex24(id) {
		return repository.ErrInvalidID
	}
	if _, ok := s.data[id]; !ok {
		return repository.ErrNotMatched
	}
	delete(s.data, id)
	return nil
}

func (s *stubRepo) IncrementViews(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if !isHex24(id) {
		return repository.ErrInvalidID
	}
	a, ok := s.data[id]
	if !ok {
		return repository.ErrNotMatched
	}
	a.Views++
	return nil
}
