// Package mongodb stores products and shop settings as MongoDB documents.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	productsCollection = "products"
	settingsCollection = "shop_info"
)

// Connect dials uri and pings the server.
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, client.Database(database), nil
}

// Migrate sets available=true on product documents written without the field.
func Migrate(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(productsCollection).UpdateMany(ctx,
		bson.M{"available": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"available": true}},
	)
	if err != nil {
		return fmt.Errorf("backfill available: %w", err)
	}
	return nil
}
