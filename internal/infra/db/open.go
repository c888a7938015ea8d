// Package db owns the document store connection. A Store is opened once in main,
// shared by every repository, and closed on shutdown.
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"herald/internal/config"
)

// Collection names.
const (
	ArticlesCollection     = "articles"
	BreakingNewsCollection = "breaking_news"
)

// ErrStoreUnavailable is returned when the store cannot be reached.
var ErrStoreUnavailable = errors.New("document store unavailable")

// Store is an open connection to one database.
type Store struct {
	client    *mongo.Client
	db        *mongo.Database
	opTimeout time.Duration
}

// ClientOptions builds driver options from cfg.
func ClientOptions(cfg *config.StoreConfig) *options.ClientOptions {
	return options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)
}

// Open connects to the store and verifies the connection with a ping against the primary.
func Open(ctx context.Context, cfg *config.StoreConfig) (*Store, error) {
	client, err := mongo.Connect(ctx, ClientOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("%w: connect: %v", ErrStoreUnavailable, err)
	}

	slog.Info("document store connection pool configured",
		slog.String("database", cfg.Database),
		slog.Uint64("max_pool_size", cfg.MaxPoolSize),
		slog.Uint64("min_pool_size", cfg.MinPoolSize),
		slog.Duration("connect_timeout", cfg.ConnectTimeout))

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: ping: %v", ErrStoreUnavailable, err)
	}

	slog.Info("document store connection established successfully")
	return &Store{
		client:    client,
		db:        client.Database(cfg.Database),
		opTimeout: cfg.OpTimeout,
	}, nil
}

// Collection returns a handle to name in the configured database.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// OpTimeout is the per-call deadline repositories apply.
func (s *Store) OpTimeout() time.Duration {
	return s.opTimeout
}

// Ping checks the primary is reachable. Used by the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Close disconnects the client, waiting for in-use connections until ctx expires.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
