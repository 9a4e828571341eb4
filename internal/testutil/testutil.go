package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/moverhub/backend/internal/db"
)

// NewTestDB creates an in-memory SQLite database with the real migrations
// applied, so repository tests run against the same schema production uses.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	d, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	if err := db.RunMigrations(d); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return d
}
