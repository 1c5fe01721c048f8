package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/swapplan/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens an empty, migrated in-memory catalog store that is closed
// with the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening test catalog store")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
