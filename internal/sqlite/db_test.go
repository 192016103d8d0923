package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing.
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.EnsureSchema()
	require.NoError(t, err, "failed to create schema")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestEnsureSchema(t *testing.T) {
	db := NewTestDB(t)

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='idea_store'").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count, "idea_store table not found")

	// Creating the schema again is a no-op.
	require.NoError(t, db.EnsureSchema())
}
