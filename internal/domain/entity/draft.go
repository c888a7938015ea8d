package entity

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DraftTimeLayout is the minute-precision UTC layout used by the editor form.
const DraftTimeLayout = "2006-01-02T15:04"

// ArticleDraft is the editable, string-shaped form of an article.
// Tags are comma-separated and sources are separated by newlines or commas.
type ArticleDraft struct {
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	Category    string
	Image       string
	AuthorName  string
	AuthorRole  string
	AuthorImage string
	PublishedAt string
	Featured    bool
	Breaking    bool
	Published   bool
	Tags        string
	Sources     string
}

// DraftFromArticle renders a into form fields.
func DraftFromArticle(a *Article) ArticleDraft {
	d := ArticleDraft{
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		Category:    string(a.Category),
		Image:       a.Image,
		AuthorName:  a.Author.Name,
		AuthorRole:  a.Author.Role,
		AuthorImage: a.Author.Avatar,
		Featured:    a.Featured,
		Breaking:    a.Breaking,
		Published:   a.Published,
		Tags:        strings.Join(a.Tags, ", "),
		Sources:     strings.Join(a.Sources, "\n"),
	}
	if !a.PublishedAt.IsZero() {
		d.PublishedAt = a.PublishedAt.UTC().Format(DraftTimeLayout)
	}
	return d
}

// Parse converts the form back into an Article. An empty slug is derived from the
// title and an empty publish time becomes now. ID and timestamps are left to the store.
func (d ArticleDraft) Parse(now time.Time) (*Article, error) {
	a := &Article{
		Title:     strings.TrimSpace(d.Title),
		Slug:      strings.TrimSpace(d.Slug),
		Excerpt:   strings.TrimSpace(d.Excerpt),
		Content:   d.Content,
		Image:     strings.TrimSpace(d.Image),
		Featured:  d.Featured,
		Breaking:  d.Breaking,
		Published: d.Published,
		Author: Author{
			Name:   strings.TrimSpace(d.AuthorName),
			Role:   strings.TrimSpace(d.AuthorRole),
			Avatar: strings.TrimSpace(d.AuthorImage),
		},
		Tags:    splitList(d.Tags, ","),
		Sources: splitList(d.Sources, ",\n"),
	}
	if a.Slug == "" {
		a.Slug = Slugify(a.Title)
	}
	if d.Category != "" {
		c, err := ParseCategory(d.Category)
		if err != nil {
			return nil, err
		}
		a.Category = c
	}
	publishedAt := strings.TrimSpace(d.PublishedAt)
	// 空文字は Date ルールを素通りする
	if err := validation.Validate(publishedAt, validation.Date(DraftTimeLayout)); err != nil {
		return nil, &ValidationError{Field: "publishedAt", Message: "must match " + DraftTimeLayout}
	}
	if publishedAt == "" {
		a.PublishedAt = now.UTC().Truncate(time.Minute)
	} else {
		t, _ := time.ParseInLocation(DraftTimeLayout, publishedAt, time.UTC)
		a.PublishedAt = t
	}
	return a, nil
}

func splitList(s, seps string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
