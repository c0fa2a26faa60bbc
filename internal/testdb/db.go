package testdb

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/tarefas/internal/platform/postgres"
	"github.com/phrazzld/tarefas/internal/platform/sqlite"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// GetTestDatabaseURL returns the PostgreSQL URL for tests.
// It checks TAREFAS_TEST_DATABASE_URL and DATABASE_URL in that order.
func GetTestDatabaseURL() string {
	if url := os.Getenv("TAREFAS_TEST_DATABASE_URL"); url != "" {
		return url
	}
	return os.Getenv("DATABASE_URL")
}

// ShouldSkipDatabaseTest reports whether no PostgreSQL database is configured.
func ShouldSkipDatabaseTest() bool {
	return GetTestDatabaseURL() == ""
}

// OpenSQLite opens a fresh SQLite database under t.TempDir with the tarefas
// table created. The connection is closed when the test ends.
func OpenSQLite(t *testing.T) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "todo.db"))
	require.NoError(t, err, "failed to open sqlite test database")
	t.Cleanup(func() { CleanupDB(t, db) })

	require.NoError(t, sqlite.NewSQLiteTaskStore(db, nil).Init(ctx), "failed to create schema")
	return db
}

// GetTestDBWithT connects to the configured PostgreSQL database and ensures the
// tarefas table exists. The test is skipped when no database is configured.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	if ShouldSkipDatabaseTest() {
		t.Skip("TAREFAS_TEST_DATABASE_URL not set - skipping PostgreSQL test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := postgres.Open(ctx, GetTestDatabaseURL())
	require.NoError(t, err, "failed to connect to PostgreSQL test database")
	t.Cleanup(func() { CleanupDB(t, db) })

	require.NoError(t, postgres.NewPostgresTaskStore(db, nil).Init(ctx), "failed to create schema")
	return db
}

// CleanupDB closes db, logging rather than failing on errors.
func CleanupDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		t.Logf("warning: failed to close database connection: %v", err)
	}
}
