package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"weather-entities/internal/config"
)

// ConnectMongo creates the process-wide Mongo client and verifies the
// connection. The caller owns the disconnect.
func ConnectMongo(ctx context.Context, cfg config.StoreConfig) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, nil
}

// ConnectSQLite opens the embedded in-memory store used by the "memory"
// store type.
func ConnectSQLite(ctx context.Context, cfg config.StoreConfig) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite3", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}
	return db, nil
}
