package confs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "MONGO_DB", "MONGO_TIMEOUT", "USER_CACHE_SIZE", "STATIC_DIR", "VIEWS_DIR"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "exercise-tracker", cfg.MongoDB)
	assert.Equal(t, 10*time.Second, cfg.MongoTimeout)
	assert.Equal(t, 1024, cfg.UserCacheSize)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, "views", cfg.ViewsDir)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_DRIVER", DriverMongo)
	t.Setenv("MONGO_TIMEOUT", "3s")
	t.Setenv("USER_CACHE_SIZE", "16")

	cfg := FromEnv()

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, DriverMongo, cfg.DBDriver)
	assert.Equal(t, 3*time.Second, cfg.MongoTimeout)
	assert.Equal(t, 16, cfg.UserCacheSize)
}

func TestGetEnvHelpersFallBackOnGarbage(t *testing.T) {
	t.Setenv("TRACKER_TEST_INT", "twelve")
	t.Setenv("TRACKER_TEST_DURATION", "soon")

	assert.Equal(t, 7, GetEnvAsInt("TRACKER_TEST_INT", 7))
	assert.Equal(t, time.Minute, GetEnvAsDuration("TRACKER_TEST_DURATION", time.Minute))
	assert.Equal(t, "fallback", GetEnvAsString("TRACKER_TEST_MISSING", "fallback"))
}
