// Package testutil holds shared fixtures for package tests.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/RubachokBoss/study-planner/internal/config"
	"github.com/RubachokBoss/study-planner/internal/database"
)

// NewSQLiteDB creates a migrated SQLite database under t.TempDir and closes it
// when the test ends.
func NewSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		Path:         filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}

	if err := database.Migrate(cfg); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db, err := database.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}
