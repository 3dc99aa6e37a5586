package cache

import (
	"exercise-tracker/entities"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserCacheHitAndMiss(t *testing.T) {
	uc := NewUserCache(4)

	_, ok := uc.Get("missing")
	assert.False(t, ok)

	uc.Add(entities.User{ID: "u1", Username: "alice"})
	user, ok := uc.Get("u1")
	assert.True(t, ok)
	assert.Equal(t, "alice", user.Username)

	stats := uc.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, 4, stats.Capacity)
}

func TestUserCacheEvictsOldest(t *testing.T) {
	uc := NewUserCache(2)
	uc.Add(entities.User{ID: "u1"})
	uc.Add(entities.User{ID: "u2"})
	uc.Add(entities.User{ID: "u1", Username: "again"}) // refresh, no growth
	uc.Add(entities.User{ID: "u3"})

	_, ok := uc.Get("u1")
	assert.False(t, ok)
	_, ok = uc.Get("u2")
	assert.True(t, ok)
	_, ok = uc.Get("u3")
	assert.True(t, ok)
	assert.Equal(t, 2, uc.Stats().Size)
}

func TestUserCacheClear(t *testing.T) {
	uc := NewUserCache(0)
	uc.Add(entities.User{ID: "u1"})
	uc.Clear()

	_, ok := uc.Get("u1")
	assert.False(t, ok)
	assert.Equal(t, 0, uc.Stats().Size)
	assert.Equal(t, 1, uc.Stats().Capacity)
}

func TestUserCacheConcurrentUse(t *testing.T) {
	uc := NewUserCache(8)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("u%d", i)
			uc.Add(entities.User{ID: id})
			uc.Get(id)
		}(i)
	}
	wg.Wait()

	stats := uc.Stats()
	assert.Equal(t, 8, stats.Size)
	assert.Equal(t, uint64(16), stats.Hits+stats.Misses)
}
