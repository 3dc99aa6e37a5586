package repositories

import (
	"context"
	"errors"
	"exercise-tracker/db"
	"exercise-tracker/entities"

	"gorm.io/gorm"
)

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{db: database}
}

func (r *userPgRepository) Create(ctx context.Context, user *entities.User) error {
	return r.db.GetDB().WithContext(ctx).Create(user).Error
}

func (r *userPgRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetAll(ctx context.Context) ([]entities.User, error) {
	users := make([]entities.User, 0)
	err := r.db.GetDB().WithContext(ctx).Select("id", "username", "created_at").Order("created_at ASC").Find(&users).Error
	return users, err
}
