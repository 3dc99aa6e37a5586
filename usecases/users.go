package usecases

import (
	"context"
	"errors"
	"exercise-tracker/entities"
	"exercise-tracker/repositories"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type UserUseCase struct {
	repo repositories.UserRepository
}

func NewUserUseCase(r repositories.UserRepository) *UserUseCase {
	return &UserUseCase{repo: r}
}

// CreateUser stores a new user. Usernames are not required to be unique.
func (uc *UserUseCase) CreateUser(ctx context.Context, username string) (*entities.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrUsernameRequired
	}
	user := &entities.User{Username: username}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// ListUsers returns every user in creation order.
func (uc *UserUseCase) ListUsers(ctx context.Context) ([]entities.User, error) {
	users, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser resolves id to a user. Malformed ids fail with ErrInvalidUserID,
// unknown ones with ErrUserNotFound.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*entities.User, error) {
	return lookupUser(ctx, uc.repo, id)
}

func lookupUser(ctx context.Context, repo repositories.UserRepository, id string) (*entities.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUserID, id)
	}
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
