package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names shared by the Mongo repositories.
const (
	collectionMenus    = "menus"
	collectionSubmenus = "submenus"
	collectionDishes   = "dishes"
)

// MongoConfig tunes the Mongo client pool.
type MongoConfig struct {
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	// ConnectTimeout bounds connect, the initial ping and index creation.
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	EnableCompression      bool
}

// DefaultMongoConfig returns the pool settings used by the service.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            5,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		EnableCompression:      true,
	}
}

// clientOptions maps cfg onto driver options for uri.
func (cfg MongoConfig) clientOptions(uri string) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)
	if cfg.EnableCompression {
		opts.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}
	return opts
}

// MongoDB holds the client and the three menu tree collections.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Menus    *mongo.Collection
	Submenus *mongo.Collection
	Dishes   *mongo.Collection
}

// NewMongoDB connects with DefaultMongoConfig.
func NewMongoDB(ctx context.Context, uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(ctx, uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects, pings and ensures the parent lookup
// indexes exist. The client is disconnected if any step fails.
func NewMongoDBWithConfig(ctx context.Context, uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, cfg.clientOptions(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:   client,
		Database: db,
		Menus:    db.Collection(collectionMenus),
		Submenus: db.Collection(collectionSubmenus),
		Dishes:   db.Collection(collectionDishes),
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	if err := m.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("create mongodb indexes: %w", err)
	}
	return m, nil
}

// ensureIndexes backs the scoped list queries and the cascade deletes by
// parent id.
func (m *MongoDB) ensureIndexes(ctx context.Context) error {
	byParent := map[*mongo.Collection][]mongo.IndexModel{
		m.Submenus: {
			{Keys: bson.D{{Key: "menu_id", Value: 1}, {Key: "created_at", Value: 1}}},
		},
		m.Dishes: {
			{Keys: bson.D{{Key: "submenu_id", Value: 1}, {Key: "created_at", Value: 1}}},
			{Keys: bson.D{{Key: "menu_id", Value: 1}}},
		},
	}
	for coll, models := range byParent {
		if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("%s: %w", coll.Name(), err)
		}
	}
	return nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// Ping checks the server within two seconds.
func (m *MongoDB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
