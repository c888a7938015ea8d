// Package entity defines the core domain entities and validation logic for the newsroom.
// It contains the Article and BreakingNewsItem business objects, the fixed category
// enumeration, slug derivation, and the editor draft value used by the admin form.
package entity

import (
	"fmt"
	"strings"
	"time"
)

// Category is a section of the paper. Values are always stored lowercase.
type Category string

// The fixed category enumeration.
const (
	CategoryPolitics      Category = "politics"
	CategoryBusiness      Category = "business"
	CategoryTechnology    Category = "technology"
	CategorySports        Category = "sports"
	CategoryEntertainment Category = "entertainment"
	CategoryHealth        Category = "health"
	CategoryScience       Category = "science"
	CategoryWorld         Category = "world"
)

var categories = []Category{
	CategoryPolitics,
	CategoryBusiness,
	CategoryTechnology,
	CategorySports,
	CategoryEntertainment,
	CategoryHealth,
	CategoryScience,
	CategoryWorld,
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is a member of the enumeration.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the canonical lowercase name.
func (c Category) String() string {
	return string(c)
}

// ParseCategory canonicalizes raw (case-insensitive, surrounding whitespace ignored)
// and returns a ValidationError when it is not a known category.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", &ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("must be one of %s", joinCategories()),
		}
	}
	return c, nil
}

func joinCategories() string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// Author is the byline of an article. Only Name is required.
type Author struct {
	Name   string
	Avatar string
	Role   string
}

// Article represents a news article entity in the system.
type Article struct {
	ID          string
	Slug        string
	Title       string
	Excerpt     string
	Content     string
	Category    Category
	Image       string
	Author      Author
	PublishedAt time.Time
	Featured    bool
	Breaking    bool
	Published   bool
	Tags        []string
	Sources     []string
	Views       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsDraft reports whether the article is hidden from readers.
func (a *Article) IsDraft() bool {
	return !a.Published
}

// Slugify derives a URL slug from a title: lowercase, every run of characters
// outside [a-z0-9] collapsed into a single hyphen, leading and trailing hyphens trimmed.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
