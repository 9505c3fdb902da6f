// Package testdb opens a migrated SQLite database for tests.
package testdb

import (
	"context"
	"path/filepath"
	"testing"

	"safezone/internal/infra/persistence/postgres"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// New returns a fresh, fully migrated database living in t's temp dir.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := postgres.OpenSQLite(filepath.Join(t.TempDir(), "safezone.db"))
	require.NoError(t, err)
	require.NoError(t, postgres.RunMigrations(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
