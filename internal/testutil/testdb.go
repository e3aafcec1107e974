package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/floodstat/floodstat/internal/db"
)

// NewTestDB opens a migrated snapshot database. An empty name gives an
// in-memory database; otherwise the file is created under t.TempDir().
// The database is closed when the test completes.
func NewTestDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	path := ":memory:"
	if name != "" {
		path = filepath.Join(t.TempDir(), name)
	}
	database, err := db.OpenDB(path)
	if err != nil {
		t.Fatalf("opening snapshot database %s: %v", path, err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}
