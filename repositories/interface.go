package repositories

import (
	"context"
	"errors"
	"exercise-tracker/entities"
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetAll(ctx context.Context) ([]entities.User, error)
}

// ExerciseFilter selects a user's entries. FromDay and ToDay are inclusive
// "2006-01-02" bounds; empty means open. Limit <= 0 means no cap.
type ExerciseFilter struct {
	UserID  string
	FromDay string
	ToDay   string
	Limit   int
}

type ExerciseRepository interface {
	Create(ctx context.Context, exercise *entities.Exercise) error
	Find(ctx context.Context, filter ExerciseFilter) ([]entities.Exercise, error)
}
