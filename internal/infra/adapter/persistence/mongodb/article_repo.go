package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"herald/internal/domain/entity"
	"herald/internal/repository"
)

type ArticleRepo struct {
	coll      *mongo.Collection
	opTimeout time.Duration
	now       func() time.Time
}

// NewArticleRepo returns a repository over coll. opTimeout bounds each call; zero disables it.
func NewArticleRepo(coll *mongo.Collection, opTimeout time.Duration) *ArticleRepo {
	return &ArticleRepo{coll: coll, opTimeout: opTimeout, now: time.Now}
}

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

func (repo *ArticleRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if repo.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, repo.opTimeout)
}

func (repo *ArticleRepo) find(ctx context.Context, op string, filter bson.D, opts *options.FindOptions) (_ []*entity.Article, err error) {
	defer observe(op, time.Now(), &err)
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	cur, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	var docs []articleDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, wrapErr(op+": decode", err)
	}

	articles := make([]*entity.Article, 0, len(docs))
	for i := range docs {
		articles = append(articles, docs[i].toEntity())
	}
	return articles, nil
}

func (repo *ArticleRepo) findOne(ctx context.Context, op string, filter bson.D) (_ *entity.Article, err error) {
	defer observe(op, time.Now(), &err)
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	var doc articleDocument
	err = repo.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return doc.toEntity(), nil
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	return repo.find(ctx, "List", bson.D{}, options.Find().SetSort(newestFirst()))
}

func (repo *ArticleRepo) ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Article, error) {
	return repo.find(ctx, "ListByCategory", categoryFilter(category), options.Find().SetSort(newestFirst()))
}

func (repo *ArticleRepo) ListFeatured(ctx context.Context, limit int) ([]*entity.Article, error) {
	opts := options.Find().SetSort(newestFirst())
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return repo.find(ctx, "ListFeatured", flagFilter("featured", "isFeatured"), opts)
}

func (repo *ArticleRepo) ListBreaking(ctx context.Context) ([]*entity.Article, error) {
	return repo.find(ctx, "ListBreaking", flagFilter("breaking", "isBreaking"), options.Find().SetSort(newestFirst()))
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	filter, err := objectIDFilter(id)
	if err != nil {
		return nil, wrapErr("Get", err)
	}
	return repo.findOne(ctx, "Get", filter)
}

func (repo *ArticleRepo) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	return repo.findOne(ctx, "GetBySlug", bson.D{{Key: "slug", Value: slug}})
}

func (repo *ArticleRepo) ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error) {
	filter, err := slugFilter(slug, excludeID)
	if err != nil {
		return false, wrapErr("ExistsBySlug", err)
	}

	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	err = repo.coll.FindOne(ctx, filter, options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, wrapErr("ExistsBySlug", err)
	}
	return true, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) (err error) {
	defer observe("Create", time.Now(), &err)
	now := storeTime(repo.now())
	article.CreatedAt = now
	article.UpdatedAt = now
	article.Views = 0
	if article.PublishedAt.IsZero() {
		article.PublishedAt = now
	}

	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	res, err := repo.coll.InsertOne(ctx, newArticleDocument(article))
	if err != nil {
		return wrapErr("Create", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		article.ID = oid.Hex()
	}
	article.PublishedAt = storeTime(article.PublishedAt)
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, id string, patch repository.ArticlePatch) (err error) {
	defer observe("Update", time.Now(), &err)
	filter, err := objectIDFilter(id)
	if err != nil {
		return wrapErr("Update", err)
	}

	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, filter, buildPatchPipeline(patch, repo.now()))
	if err != nil {
		return wrapErr("Update", err)
	}
	if res.MatchedCount == 0 {
		return wrapErr("Update", repository.ErrNotMatched)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id string) (err error) {
	defer observe("Delete", time.Now(), &err)
	filter, err := objectIDFilter(id)
	if err != nil {
		return wrapErr("Delete", err)
	}

	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, filter)
	if err != nil {
		return wrapErr("Delete", err)
	}
	if res.DeletedCount == 0 {
		return wrapErr("Delete", repository.ErrNotMatched)
	}
	return nil
}

func (repo *ArticleRepo) IncrementViews(ctx context.Context, id string) (err error) {
	defer observe("IncrementViews", time.Now(), &err)
	filter, err := objectIDFilter(id)
	if err != nil {
		return wrapErr("IncrementViews", err)
	}

	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, filter, incrementViewsPipeline(repo.now()))
	if err != nil {
		return wrapErr("IncrementViews", err)
	}
	if res.MatchedCount == 0 {
		return wrapErr("IncrementViews", repository.ErrNotMatched)
	}
	return nil
}
