package database

import (
	"context"
	"log"
	"time"

	"food-ordering-backend/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	log.Println("connected to MongoDB")
	return client, nil
}

// OpenCollection returns a handle to a named collection in the configured
// database.
func OpenCollection(client *mongo.Client, cfg *config.Config, collectionName string) *mongo.Collection {
	return client.Database(cfg.DatabaseName).Collection(collectionName)
}

// EnsureIndexes creates the indexes the handlers rely on. The unique index on
// mobile_number is what actually enforces one account per number; the
// duplicate check in SignUp only gives the friendlier sequential error.
func EnsureIndexes(ctx context.Context, users *mongo.Collection) error {
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "mobile_number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
