package testutil

import (
	"path/filepath"
	"testing"

	"github.com/clubmesa/courtside/internal/db"
)

// NewTestDB opens a throwaway SQLite database under t.TempDir with all
// migrations applied. The connection closes when the test finishes.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.New(filepath.Join(t.TempDir(), "courtside_test.db"))
	if err != nil {
		t.Fatalf("create test db: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}
