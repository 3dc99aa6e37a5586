package server

import (
	"context"
	"exercise-tracker/confs"
	"exercise-tracker/db"
	"exercise-tracker/repositories"
	"io"
)

// Store bundles the repositories a server runs against.
type Store struct {
	Users     repositories.UserRepository
	Exercises repositories.ExerciseRepository
}

// OpenStore connects to the backend named by cfg.DBDriver. The returned
// closer releases the connection.
func OpenStore(ctx context.Context, cfg *confs.Config) (Store, io.Closer, error) {
	if cfg.DBDriver == confs.DriverMongo {
		database, err := db.ConnectMongo(ctx, cfg)
		if err != nil {
			return Store{}, nil, err
		}
		return Store{
			Users:     repositories.NewUserMongoRepository(database.DB),
			Exercises: repositories.NewExerciseMongoRepository(database.DB),
		}, database, nil
	}

	database, err := db.Connect(cfg)
	if err != nil {
		return Store{}, nil, err
	}
	return NewGormStore(database), database, nil
}

// NewGormStore builds a Store over a relational database.
func NewGormStore(database db.Database) Store {
	return Store{
		Users:     repositories.NewUserPgRepository(database),
		Exercises: repositories.NewExercisePgRepository(database),
	}
}
