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

// インメモリ ArticleRepository。ID は 24 桁の16進数で、それ以外は ErrInvalidID。
type stubRepo struct {
	mu     sync.Mutex
	data   map[string]*entity.Article
	nextID int
	clock  time.Time
	err    error // 強制的にエラーを返したいとき用
	failOn map[string]error
}

func newStub() *stubRepo {
	return &stubRepo{
		data:   map[string]*entity.Article{},
		clock:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		failOn: map[string]error{},
	}
}

func validID(id string) bool {
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

func (s *stubRepo) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func clone(a *entity.Article) *entity.Article {
	c := *a
	c.Tags = append([]string(nil), a.Tags...)
	c.Sources = append([]string(nil), a.Sources...)
	return &c
}

// seed stores a published article and returns its ID.
func (s *stubRepo) seed(a entity.Article) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	a.ID = fmt.Sprintf("%024x", s.nextID)
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.tick()
		a.UpdatedAt = a.CreatedAt
	}
	s.data[a.ID] = &a
	return a.ID
}

func (s *stubRepo) sorted(keep func(*entity.Article) bool) []*entity.Article {
	out := make([]*entity.Article, 0, len(s.data))
	for _, a := range s.data {
		if keep(a) {
			out = append(out, clone(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PublishedAt.Equal(out[j].PublishedAt) {
			return out[i].PublishedAt.After(out[j].PublishedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// --- ArticleRepository を満たす ---

func (s *stubRepo) List(_ context.Context) ([]*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.sorted(func(*entity.Article) bool { return true }), nil
}

func (s *stubRepo) ListByCategory(_ context.Context, c entity.Category) ([]*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.sorted(func(a *entity.Article) bool { return a.Category == c }), nil
}

func (s *stubRepo) ListFeatured(_ context.Context, limit int) ([]*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := s.sorted(func(a *entity.Article) bool { return a.Featured })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubRepo) ListBreaking(_ context.Context) ([]*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.sorted(func(a *entity.Article) bool { return a.Breaking }), nil
}

func (s *stubRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if !validID(id) {
		return nil, repository.ErrInvalidID
	}
	a, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	return clone(a), nil
}

func (s *stubRepo) GetBySlug(_ context.Context, slug string) (*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, a := range s.data {
		if a.Slug == slug {
			return clone(a), nil
		}
	}
	return nil, nil
}

func (s *stubRepo) ExistsBySlug(_ context.Context, slug, excludeID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	for id, a := range s.data {
		if a.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.nextID++
	a.ID = fmt.Sprintf("%024x", s.nextID)
	now := s.tick()
	a.CreatedAt, a.UpdatedAt, a.Views = now, now, 0
	if a.PublishedAt.IsZero() {
		a.PublishedAt = now
	}
	s.data[a.ID] = clone(a)
	return nil
}

func (s *stubRepo) Update(_ context.Context, id string, p repository.ArticlePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if !validID(id) {
		return repository.ErrInvalidID
	}
	a, ok := s.data[id]
	if !ok {
		return repository.ErrNotMatched
	}
	if p.Slug != nil {
		a.Slug = *p.Slug
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Excerpt != nil {
		a.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Image != nil {
		a.Image = *p.Image
	}
	if p.Author != nil {
		a.Author = *p.Author
	}
	if p.PublishedAt != nil {
		a.PublishedAt = *p.PublishedAt
	}
	if p.Featured != nil {
		a.Featured = *p.Featured
	}
	if p.Breaking != nil {
		a.Breaking = *p.Breaking
	}
	if p.Published != nil {
		a.Published = *p.Published
	}
	if p.Tags != nil {
		a.Tags = *p.Tags
	}
	if p.Sources != nil {
		a.Sources = *p.Sources
	}
	a.UpdatedAt = s.tick()
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failOn[id]; ok {
		return err
	}
	if s.err != nil {
		return s.err
	}
	if !validID(id) {
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
	if !validID(id) {
		return repository.ErrInvalidID
	}
	a, ok := s.data[id]
	if !ok {
		return repository.ErrNotMatched
	}
	a.Views++
	a.UpdatedAt = s.tick()
	return nil
}
