package database

import (
	"context"
	"fmt"
	"time"

	"catalog-orders/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Collection names
const (
	ProductsCollection   = "products"
	CategoriesCollection = "categories"
	OrdersCollection     = "orders"
)

// Service owns the MongoDB client for the lifetime of the process
type Service struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// New connects to MongoDB and verifies the connection with a ping. A failure
// here means the store is unavailable and the process should not start.
func New(ctx context.Context, cfg config.MongoConfig, logger *zap.Logger) (*Service, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("Connected to MongoDB", zap.String("database", cfg.Database))

	return &Service{
		client: client,
		db:     client.Database(cfg.Database),
		logger: logger,
	}, nil
}

// DB returns the application database handle
func (s *Service) DB() *mongo.Database {
	return s.db
}

// Health reports the store status in a form suitable for the health endpoint
func (s *Service) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	stats := make(map[string]string)
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		stats["status"] = "down"
		stats["error"] = err.Error()
		return stats
	}

	stats["status"] = "up"
	stats["database"] = s.db.Name()
	return stats
}

// Clear removes every document from the application collections. It is only
// used when reseeding data.
func (s *Service) Clear(ctx context.Context) error {
	for _, name := range []string{CategoriesCollection, ProductsCollection, OrdersCollection} {
		if _, err := s.db.Collection(name).DeleteMany(ctx, bson.D{}); err != nil {
			return fmt.Errorf("failed to clear %s: %w", name, err)
		}
	}
	s.logger.Info("Database cleared")
	return nil
}

// Close disconnects the client
func (s *Service) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}
	return nil
}
