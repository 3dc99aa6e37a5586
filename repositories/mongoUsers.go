package repositories

import (
	"context"
	"errors"
	"exercise-tracker/db"
	"exercise-tracker/entities"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userMongoRepository struct {
	coll *mongo.Collection
}

func NewUserMongoRepository(database *mongo.Database) UserRepository {
	return &userMongoRepository{coll: database.Collection(db.UsersCollection)}
}

func (r *userMongoRepository) Create(ctx context.Context, user *entities.User) error {
	user.AssignDefaults()
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *userMongoRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *userMongoRepository) GetAll(ctx context.Context) ([]entities.User, error) {
	opts := options.Find().
		SetProjection(bson.M{"username": 1, "created_at": 1}).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]entities.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}
