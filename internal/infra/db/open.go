// Package db manages the MongoDB client lifecycle and index bootstrap.
package db

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inkpress/pkg/config"
)

// Open connects to MongoDB using MONGO_URI and returns the application
// database handle. The process exits when the URI is missing or the
// server is unreachable, matching the fail-fast startup policy.
func Open() *mongo.Database {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Fatal("MONGO_URI not set")
	}
	dbName := config.GetEnvString("MONGO_DATABASE", "inkpress")

	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(uint64(config.GetEnvInt("MONGO_MAX_POOL_SIZE", 25))).
		SetMaxConnIdleTime(config.GetEnvDuration("MONGO_MAX_CONN_IDLE_TIME", 30*time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping mongodb: %v", err)
	}

	slog.Info("mongodb connection established",
		slog.String("database", dbName))

	return client.Database(dbName)
}

// EnsureIndexes creates the indexes the query paths depend on.
// Index creation is idempotent; existing indexes are left alone.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = database.Collection("articles").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "author", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "published", Value: 1}, {Key: "publishedAt", Value: -1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})
	return err
}

// Ping verifies the connection is still healthy. Used by the health endpoint.
func Ping(ctx context.Context, database *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return database.Client().Ping(ctx, nil)
}
