// Package databasetest opens migrated in-memory SQLite pools for tests.
package databasetest

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/family-task-api/internal/config"
	"github.com/yukikurage/family-task-api/internal/database"
	"gorm.io/gorm/logger"
)

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Open returns a migrated pool backed by a private in-memory database. The
// pool is limited to one connection so every query sees the same database.
func Open(t testing.TB) *database.DatabasePool {
	t.Helper()

	pool, err := database.NewDatabasePool(&database.PoolConfig{
		Driver:       config.DriverSQLite,
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     logger.Silent,
		Logger:       DiscardLogger(),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		pool.Close()
	})

	require.NoError(t, database.Migrate(pool.DB, DiscardLogger()))
	return pool
}
