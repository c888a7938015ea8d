package mongodb

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"herald/internal/domain/entity"
)

// articleDocument is the stored shape of an article. The isFeatured, isBreaking
// and featuredImage fields only exist on legacy records and are never written.
type articleDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Slug          string             `bson:"slug"`
	Title         string             `bson:"title"`
	Excerpt       string             `bson:"excerpt"`
	Content       string             `bson:"content"`
	Category      string             `bson:"category"`
	Image         string             `bson:"image,omitempty"`
	FeaturedImage string             `bson:"featuredImage,omitempty"`
	Author        authorField        `bson:"author"`
	PublishedAt   time.Time          `bson:"publishedAt"`
	Featured      bool               `bson:"featured"`
	IsFeatured    bool               `bson:"isFeatured,omitempty"`
	Breaking      bool               `bson:"breaking"`
	IsBreaking    bool               `bson:"isBreaking,omitempty"`
	Published     *bool              `bson:"published,omitempty"`
	Tags          []string           `bson:"tags,omitempty"`
	Sources       []string           `bson:"sources,omitempty"`
	Views         int64              `bson:"views"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

// authorField decodes both the structured author and the legacy plain-string byline.
type authorField struct {
	Name   string `bson:"name"`
	Avatar string `bson:"avatar,omitempty"`
	Role   string `bson:"role,omitempty"`
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (a *authorField) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.String:
		s, _ := raw.StringValueOK()
		*a = authorField{Name: s}
		return nil
	case bsontype.EmbeddedDocument:
		type plain authorField
		var p plain
		if err := raw.Unmarshal(&p); err != nil {
			return fmt.Errorf("decode author: %w", err)
		}
		*a = authorField(p)
		return nil
	case bsontype.Null, bsontype.Undefined:
		*a = authorField{}
		return nil
	default:
		return fmt.Errorf("decode author: unsupported BSON type %s", t)
	}
}

func (d *articleDocument) toEntity() *entity.Article {
	image := d.Image
	if image == "" {
		image = d.FeaturedImage
	}
	// published が存在しない旧レコードは公開済みとして扱う
	published := d.Published == nil || *d.Published

	return &entity.Article{
		ID:       d.ID.Hex(),
		Slug:     d.Slug,
		Title:    d.Title,
		Excerpt:  d.Excerpt,
		Content:  d.Content,
		Category: entity.Category(strings.ToLower(strings.TrimSpace(d.Category))),
		Image:    image,
		Author: entity.Author{
			Name:   d.Author.Name,
			Avatar: d.Author.Avatar,
			Role:   d.Author.Role,
		},
		PublishedAt: d.PublishedAt,
		Featured:    d.Featured || d.IsFeatured,
		Breaking:    d.Breaking || d.IsBreaking,
		Published:   published,
		Tags:        d.Tags,
		Sources:     d.Sources,
		Views:       d.Views,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func newArticleDocument(a *entity.Article) *articleDocument {
	published := a.Published
	return &articleDocument{
		Slug:        a.Slug,
		Title:       a.Title,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		Category:    string(a.Category),
		Image:       a.Image,
		Author:      authorField{Name: a.Author.Name, Avatar: a.Author.Avatar, Role: a.Author.Role},
		PublishedAt: a.PublishedAt.UTC().Truncate(time.Millisecond),
		Featured:    a.Featured,
		Breaking:    a.Breaking,
		Published:   &published,
		Tags:        a.Tags,
		Sources:     a.Sources,
		Views:       0,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

type breakingNewsDocument struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Text string             `bson:"text"`
	// 旧形式はティッカー文字列を news に保存していた。読み取り専用。
	News      string    `bson:"news,omitempty"`
	Priority  int       `bson:"priority"`
	Active    bool      `bson:"active"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (d *breakingNewsDocument) toEntity() *entity.BreakingNewsItem {
	text := d.Text
	if text == "" {
		text = d.News
	}
	return &entity.BreakingNewsItem{
		ID:        d.ID.Hex(),
		Text:      text,
		Priority:  d.Priority,
		Active:    d.Active,
		CreatedAt: d.CreatedAt,
	}
}
