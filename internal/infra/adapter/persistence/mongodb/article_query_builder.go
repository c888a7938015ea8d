// Package mongodb implements the repository ports on top of MongoDB.
// Filters, sorts and update pipelines are built by pure functions in this file
// so they can be tested without a server.
package mongodb

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"herald/internal/domain/entity"
	"herald/internal/repository"
)

// newestFirst is the ordering of every article listing.
func newestFirst() bson.D {
	return bson.D{{Key: "publishedAt", Value: -1}, {Key: "createdAt", Value: -1}}
}

// objectIDFilter parses id or returns repository.ErrInvalidID.
func objectIDFilter(id string) (bson.D, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	return bson.D{{Key: "_id", Value: oid}}, nil
}

// categoryFilter matches category case-insensitively so legacy "Politics" records are found.
// Drafts are included; visibility is the caller's concern.
func categoryFilter(c entity.Category) bson.D {
	return bson.D{
		{Key: "category", Value: primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(string(c)) + "$",
			Options: "i",
		}},
	}
}

// flagFilter matches the canonical flag or its legacy spelling.
func flagFilter(field, legacyField string) bson.D {
	return bson.D{
		{Key: "$or", Value: bson.A{
			bson.D{{Key: field, Value: true}},
			bson.D{{Key: legacyField, Value: true}},
		}},
	}
}

// slugFilter matches slug on any article other than excludeID.
func slugFilter(slug, excludeID string) (bson.D, error) {
	f := bson.D{{Key: "slug", Value: slug}}
	if excludeID == "" {
		return f, nil
	}
	oid, err := primitive.ObjectIDFromHex(excludeID)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	return append(f, bson.E{Key: "_id", Value: bson.D{{Key: "$ne", Value: oid}}}), nil
}

// storeTime truncates to the BSON datetime precision.
func storeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// bumpUpdatedAt sets updatedAt to max(now, previous+1ms) so it always strictly increases.
func bumpUpdatedAt(now time.Time) bson.E {
	return bson.E{Key: "updatedAt", Value: bson.D{{Key: "$max", Value: bson.A{
		storeTime(now),
		bson.D{{Key: "$add", Value: bson.A{"$updatedAt", 1}}},
	}}}}
}

// literal keeps user data from being interpreted as an aggregation expression.
func literal(v any) bson.D {
	return bson.D{{Key: "$literal", Value: v}}
}

// buildPatchPipeline translates patch into an update pipeline. Setting a canonical
// field also removes its legacy twin so the two can never disagree.
func buildPatchPipeline(p repository.ArticlePatch, now time.Time) mongo.Pipeline {
	set := bson.D{}
	var unset bson.A

	if p.Slug != nil {
		set = append(set, bson.E{Key: "slug", Value: literal(*p.Slug)})
	}
	if p.Title != nil {
		set = append(set, bson.E{Key: "title", Value: literal(*p.Title)})
	}
	if p.Excerpt != nil {
		set = append(set, bson.E{Key: "excerpt", Value: literal(*p.Excerpt)})
	}
	if p.Content != nil {
		set = append(set, bson.E{Key: "content", Value: literal(*p.Content)})
	}
	if p.Category != nil {
		set = append(set, bson.E{Key: "category", Value: literal(string(*p.Category))})
	}
	if p.Image != nil {
		set = append(set, bson.E{Key: "image", Value: literal(*p.Image)})
		unset = append(unset, "featuredImage")
	}
	if p.Author != nil {
		set = append(set, bson.E{Key: "author", Value: literal(authorField{
			Name: p.Author.Name, Avatar: p.Author.Avatar, Role: p.Author.Role,
		})})
	}
	if p.PublishedAt != nil {
		set = append(set, bson.E{Key: "publishedAt", Value: literal(storeTime(*p.PublishedAt))})
	}
	if p.Featured != nil {
		set = append(set, bson.E{Key: "featured", Value: literal(*p.Featured)})
		unset = append(unset, "isFeatured")
	}
	if p.Breaking != nil {
		set = append(set, bson.E{Key: "breaking", Value: literal(*p.Breaking)})
		unset = append(unset, "isBreaking")
	}
	if p.Published != nil {
		set = append(set, bson.E{Key: "published", Value: literal(*p.Published)})
	}
	if p.Tags != nil {
		set = append(set, bson.E{Key: "tags", Value: literal(*p.Tags)})
	}
	if p.Sources != nil {
		set = append(set, bson.E{Key: "sources", Value: literal(*p.Sources)})
	}
	set = append(set, bumpUpdatedAt(now))

	pipeline := mongo.Pipeline{{{Key: "$set", Value: set}}}
	if len(unset) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$unset", Value: unset}})
	}
	return pipeline
}

// incrementViewsPipeline adds one to views, treating a missing counter as zero.
func incrementViewsPipeline(now time.Time) mongo.Pipeline {
	return mongo.Pipeline{{{Key: "$set", Value: bson.D{
		{Key: "views", Value: bson.D{{Key: "$add", Value: bson.A{
			bson.D{{Key: "$ifNull", Value: bson.A{"$views", 0}}},
			1,
		}}}},
		bumpUpdatedAt(now),
	}}}}
}
