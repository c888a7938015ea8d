package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func articleIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("slug_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("category"),
		},
		{
			Keys:    newestFirst(),
			Options: options.Index().SetName("published_created_desc"),
		},
	}
}

func breakingNewsIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "active", Value: 1}, {Key: "priority", Value: -1}},
			Options: options.Index().SetName("active_priority"),
		},
	}
}

// EnsureIndexes creates the indexes both collections rely on. Existing indexes are left alone.
func EnsureIndexes(ctx context.Context, articles, breakingNews *mongo.Collection) error {
	names, err := articles.Indexes().CreateMany(ctx, articleIndexes())
	if err != nil {
		return fmt.Errorf("ensure article indexes: %w", err)
	}
	slog.Info("article indexes ensured", slog.Any("indexes", names))

	names, err = breakingNews.Indexes().CreateMany(ctx, breakingNewsIndexes())
	if err != nil {
		return fmt.Errorf("ensure breaking news indexes: %w", err)
	}
	slog.Info("breaking news indexes ensured", slog.Any("indexes", names))
	return nil
}
