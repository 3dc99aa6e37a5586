package repositories

import (
	"context"
	"exercise-tracker/db"
	"exercise-tracker/entities"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type exerciseMongoRepository struct {
	coll *mongo.Collection
}

func NewExerciseMongoRepository(database *mongo.Database) ExerciseRepository {
	return &exerciseMongoRepository{coll: database.Collection(db.ExercisesCollection)}
}

func (r *exerciseMongoRepository) Create(ctx context.Context, exercise *entities.Exercise) error {
	exercise.AssignDefaults()
	if _, err := r.coll.InsertOne(ctx, exercise); err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}
	return nil
}

func (r *exerciseMongoRepository) Find(ctx context.Context, filter ExerciseFilter) ([]entities.Exercise, error) {
	query := bson.M{"user_id": filter.UserID}
	day := bson.M{}
	if filter.FromDay != "" {
		day["$gte"] = filter.FromDay
	}
	if filter.ToDay != "" {
		day["$lte"] = filter.ToDay
	}
	if len(day) > 0 {
		query["day"] = day
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}
	exercises := make([]entities.Exercise, 0)
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, fmt.Errorf("decode exercises: %w", err)
	}
	return exercises, nil
}
