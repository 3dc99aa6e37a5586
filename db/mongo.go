package db

import (
	"context"
	"exercise-tracker/confs"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection     = "users"
	ExercisesCollection = "exercises"
)

// MongoDatabase wraps the client and the database the tracker collections live in.
type MongoDatabase struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func (m *MongoDatabase) Close() error {
	return m.Client.Disconnect(context.Background())
}

// ConnectMongo dials cfg.MongoURI, verifies the connection and ensures indexes.
func ConnectMongo(ctx context.Context, cfg *confs.Config) (*MongoDatabase, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.MongoTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	log.Printf("Connected to MongoDB database %s", cfg.MongoDB)

	database := client.Database(cfg.MongoDB)
	if err := EnsureMongoIndexes(ctx, database); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &MongoDatabase{Client: client, DB: database}, nil
}

// EnsureMongoIndexes creates the lookup index used by log queries.
func EnsureMongoIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection(ExercisesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "day", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create exercise index: %w", err)
	}
	return nil
}
