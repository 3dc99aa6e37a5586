package repositories

import (
	"context"
	"exercise-tracker/cache"
	"exercise-tracker/entities"
)

type cachedUserRepository struct {
	next  UserRepository
	cache *cache.UserCache
}

// NewCachedUserRepository serves GetByID from c when possible. Misses that
// resolve are cached; ErrNotFound is never cached.
func NewCachedUserRepository(next UserRepository, c *cache.UserCache) UserRepository {
	return &cachedUserRepository{next: next, cache: c}
}

func (r *cachedUserRepository) Create(ctx context.Context, user *entities.User) error {
	if err := r.next.Create(ctx, user); err != nil {
		return err
	}
	r.cache.Add(*user)
	return nil
}

func (r *cachedUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	if user, ok := r.cache.Get(id); ok {
		return &user, nil
	}
	user, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.Add(*user)
	return user, nil
}

func (r *cachedUserRepository) GetAll(ctx context.Context) ([]entities.User, error) {
	return r.next.GetAll(ctx)
}
