package repositories

import (
	"context"
	"exercise-tracker/db"
	"exercise-tracker/entities"
)

type exercisePgRepository struct {
	db db.Database
}

func NewExercisePgRepository(database db.Database) ExerciseRepository {
	return &exercisePgRepository{db: database}
}

func (r *exercisePgRepository) Create(ctx context.Context, exercise *entities.Exercise) error {
	return r.db.GetDB().WithContext(ctx).Create(exercise).Error
}

func (r *exercisePgRepository) Find(ctx context.Context, filter ExerciseFilter) ([]entities.Exercise, error) {
	query := r.db.GetDB().WithContext(ctx).Where("user_id = ?", filter.UserID)
	if filter.FromDay != "" {
		query = query.Where("day >= ?", filter.FromDay)
	}
	if filter.ToDay != "" {
		query = query.Where("day <= ?", filter.ToDay)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	exercises := make([]entities.Exercise, 0)
	err := query.Order("created_at ASC").Find(&exercises).Error
	return exercises, err
}
