package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/domain/repository"
)

const (
	itemsCollection  = "items"
	ordersCollection = "orders"

	healthCheckTimeout = 2 * time.Second
)

// Storage acts as repository facade backed by MongoDB.
type Storage struct {
	client *mongo.Client
	db     *mongo.Database
	logger *slog.Logger
}

type itemRepository struct {
	coll *mongo.Collection
}

type orderRepository struct {
	coll *mongo.Collection
}

type analyticsRepository struct {
	coll *mongo.Collection
}

// New connects to MongoDB, verifies the deployment and creates indexes.
func New(ctx context.Context, uri, database string, logger *slog.Logger) (*Storage, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%w: connect mongo: %v", domainErrors.ErrStoreUnavailable, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: ping mongo: %v", domainErrors.ErrStoreUnavailable, err)
	}

	storage := newStorage(client.Database(database), logger)
	if err := storage.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("mongo storage ready", slog.String("database", database))
	return storage, nil
}

func newStorage(db *mongo.Database, logger *slog.Logger) *Storage {
	return &Storage{client: db.Client(), db: db, logger: logger}
}

// Close disconnects the client.
func (s *Storage) Close() {
	if s.client == nil {
		return
	}
	if err := s.client.Disconnect(context.Background()); err != nil {
		s.logger.Warn("mongo disconnect failed", slog.String("error", err.Error()))
	}
}

// Items returns the catalog repository.
func (s *Storage) Items() repository.ItemRepository {
	return &itemRepository{coll: s.db.Collection(itemsCollection)}
}

// Orders returns the order repository.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{coll: s.db.Collection(ordersCollection)}
}

// Analytics returns the aggregation repository.
func (s *Storage) Analytics() repository.AnalyticsRepository {
	return &analyticsRepository{coll: s.db.Collection(ordersCollection)}
}

// HealthCheck pings the primary.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Storage) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(itemsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create item indexes: %w", classify(err))
	}

	_, err = s.db.Collection(ordersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create order indexes: %w", classify(err))
	}
	return nil
}

// classify marks connection level failures as store unavailability.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domainErrors.ErrStoreUnavailable, err)
	}
	return err
}
