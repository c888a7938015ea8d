// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for listing, reading, creating, updating and deleting
// articles, plus view counting, slug regeneration and batch deletion.
package article

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"herald/internal/domain/entity"
)

// TimeLayout is the wire format of every timestamp in a response.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// AuthorDTO is the byline as it appears on the wire.
type AuthorDTO struct {
	Name   string `json:"name" example:"Jane Doe"`
	Avatar string `json:"avatar,omitempty" example:"https://cdn.example.com/jane.png"`
	Role   string `json:"role,omitempty" example:"Senior Editor"`
}

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID          string    `json:"_id" example:"65f1c2a9e4b0a1b2c3d4e5f6"`
	Slug        string    `json:"slug" example:"budget-vote-delayed"`
	Title       string    `json:"title" example:"Budget vote delayed"`
	Excerpt     string    `json:"excerpt" example:"Parliament postponed the vote to next week."`
	Content     string    `json:"content" example:"<p>Parliament postponed...</p>"`
	Category    string    `json:"category" example:"politics"`
	Image       string    `json:"image" example:"https://cdn.example.com/budget.jpg"`
	Author      AuthorDTO `json:"author"`
	PublishedAt string    `json:"publishedAt" example:"2025-10-26T10:00:00.000Z"`
	Featured    bool      `json:"featured" example:"false"`
	Breaking    bool      `json:"breaking" example:"true"`
	Published   bool      `json:"published" example:"true"`
	Tags        []string  `json:"tags"`
	Sources     []string  `json:"sources"`
	Views       int64     `json:"views" example:"42"`
	CreatedAt   string    `json:"createdAt" example:"2025-10-26T12:00:00.000Z"`
	UpdatedAt   string    `json:"updatedAt" example:"2025-10-26T12:00:00.000Z"`
}

// FormatTime renders t in TimeLayout (UTC, millisecond precision).
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// NewDTO converts an entity to its wire form. Nil slices become empty arrays.
func NewDTO(a *entity.Article) DTO {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	sources := a.Sources
	if sources == nil {
		sources = []string{}
	}
	return DTO{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		Category:    string(a.Category),
		Image:       a.Image,
		Author:      AuthorDTO{Name: a.Author.Name, Avatar: a.Author.Avatar, Role: a.Author.Role},
		PublishedAt: FormatTime(a.PublishedAt),
		Featured:    a.Featured,
		Breaking:    a.Breaking,
		Published:   a.Published,
		Tags:        tags,
		Sources:     sources,
		Views:       a.Views,
		CreatedAt:   FormatTime(a.CreatedAt),
		UpdatedAt:   FormatTime(a.UpdatedAt),
	}
}

// NewDTOs converts a list, always returning a non-nil slice.
func NewDTOs(list []*entity.Article) []DTO {
	out := make([]DTO, 0, len(list))
	for _, a := range list {
		out = append(out, NewDTO(a))
	}
	return out
}

// AuthorInput accepts a byline either as a bare name or as an object.
type AuthorInput struct {
	entity.Author
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *AuthorInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return err
		}
		a.Author = entity.Author{Name: name}
		return nil
	}
	var obj AuthorDTO
	if err := json.Unmarshal(b, &obj); err != nil {
		return errors.New("author must be a string or an object with a name")
	}
	a.Author = entity.Author{Name: obj.Name, Avatar: obj.Avatar, Role: obj.Role}
	return nil
}

// parseTime reads an RFC 3339 timestamp of any fractional precision.
func parseTime(field, raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, &entity.ValidationError{Field: field, Message: "must be an RFC 3339 timestamp"}
	}
	return t.UTC(), nil
}
