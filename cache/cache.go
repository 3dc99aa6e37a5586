package cache

import (
	"exercise-tracker/entities"
	"sync"
)

// Stats describes the cache contents and its effectiveness since start.
type Stats struct {
	Size     int    `json:"size"`
	Capacity int    `json:"capacity"`
	Hits     uint64 `json:"hits"`
	Misses   uint64 `json:"misses"`
}

// UserCache keeps recently seen users by id. Users never change after
// creation, so entries never go stale; the oldest entry is evicted once
// capacity is reached.
type UserCache struct {
	mu       sync.RWMutex
	users    map[string]entities.User
	order    []string // insertion order, oldest first
	capacity int
	hits     uint64
	misses   uint64
}

func NewUserCache(capacity int) *UserCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &UserCache{
		users:    make(map[string]entities.User, capacity),
		order:    make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Get returns the cached user for id.
func (uc *UserCache) Get(id string) (entities.User, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	user, ok := uc.users[id]
	if ok {
		uc.hits++
	} else {
		uc.misses++
	}
	return user, ok
}

// Add stores user, evicting the oldest entry when full.
func (uc *UserCache) Add(user entities.User) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, exists := uc.users[user.ID]; exists {
		uc.users[user.ID] = user
		return
	}

	if len(uc.order) >= uc.capacity {
		oldest := uc.order[0]
		uc.order = uc.order[1:]
		delete(uc.users, oldest)
	}

	uc.users[user.ID] = user
	uc.order = append(uc.order, user.ID)
}

func (uc *UserCache) Stats() Stats {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	return Stats{
		Size:     len(uc.users),
		Capacity: uc.capacity,
		Hits:     uc.hits,
		Misses:   uc.misses,
	}
}

// Clear drops every entry but keeps the counters.
func (uc *UserCache) Clear() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.users = make(map[string]entities.User, uc.capacity)
	uc.order = make([]string, 0, uc.capacity)
}
