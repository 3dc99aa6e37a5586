// Package dbtest provides throwaway databases for tests.
package dbtest

import (
	"exercise-tracker/db"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLite returns a migrated in-memory database private to t.
func NewSQLite(t testing.TB) db.Database {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	database := &db.GormDatabase{DB: gdb}
	t.Cleanup(func() { _ = database.Close() })
	return database
}
