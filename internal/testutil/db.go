package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/flowmaster/internal/database"
)

// SetupTestKV creates an in-memory SQLite key-value store with migrations
// applied. The database is closed when the test finishes.
func SetupTestKV(t *testing.T) *database.KVStore {
	t.Helper()

	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: database close error during cleanup: %v", err)
		}
	})

	return database.NewKVStore(db)
}
