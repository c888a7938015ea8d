package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"herald/internal/domain/entity"
	"herald/internal/repository"
)

type BreakingNewsRepo struct {
	coll      *mongo.Collection
	opTimeout time.Duration
	now       func() time.Time
}

func NewBreakingNewsRepo(coll *mongo.Collection, opTimeout time.Duration) *BreakingNewsRepo {
	return &BreakingNewsRepo{coll: coll, opTimeout: opTimeout, now: time.Now}
}

var _ repository.BreakingNewsRepository = (*BreakingNewsRepo)(nil)

func (repo *BreakingNewsRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if repo.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, repo.opTimeout)
}

func (repo *BreakingNewsRepo) ListActive(ctx context.Context) ([]*entity.BreakingNewsItem, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "priority", Value: -1}, {Key: "createdAt", Value: -1}})
	cur, err := repo.coll.Find(ctx, bson.D{{Key: "active", Value: true}}, opts)
	if err != nil {
		return nil, wrapErr("ListActive", err)
	}
	var docs []breakingNewsDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, wrapErr("ListActive: decode", err)
	}

	items := make([]*entity.BreakingNewsItem, 0, len(docs))
	for i := range docs {
		items = append(items, docs[i].toEntity())
	}
	return items, nil
}

func (repo *BreakingNewsRepo) Create(ctx context.Context, item *entity.BreakingNewsItem) error {
	item.CreatedAt = storeTime(repo.now())

	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	res, err := repo.coll.InsertOne(ctx, breakingNewsDocument{
		Text:      item.Text,
		Priority:  item.Priority,
		Active:    item.Active,
		CreatedAt: item.CreatedAt,
	})
	if err != nil {
		return wrapErr("Create", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid.Hex()
	}
	return nil
}

func (repo *BreakingNewsRepo) SetActive(ctx context.Context, id string, active bool) error {
	filter, err := objectIDFilter(id)
	if err != nil {
		return wrapErr("SetActive", err)
	}

	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: bson.D{{Key: "active", Value: active}}}})
	if err != nil {
		return wrapErr("SetActive", err)
	}
	if res.MatchedCount == 0 {
		return wrapErr("SetActive", repository.ErrNotMatched)
	}
	return nil
}
