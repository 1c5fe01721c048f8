package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/swapplan/internal/catalog"
)

// TestCatalog is a store seeded with the built-in catalog.
type TestCatalog struct {
	DB       *sql.DB
	Stores   catalog.Stores
	Registry *catalog.Registry
}

// NewTestCatalog seeds an in-memory store with the built-in catalog and
// builds its Registry.
func NewTestCatalog(t *testing.T) *TestCatalog {
	t.Helper()
	database := NewTestDB(t)
	ctx := context.Background()

	doc, err := catalog.LoadDefault()
	if err != nil {
		t.Fatalf("loading default catalog: %v", err)
	}
	if err := catalog.Seed(ctx, NewTestUoW(database), doc); err != nil {
		t.Fatalf("seeding catalog: %v", err)
	}

	stores := catalog.NewStores(database)
	reg, err := catalog.BuildRegistry(ctx, stores)
	if err != nil {
		t.Fatalf("building registry: %v", err)
	}
	return &TestCatalog{DB: database, Stores: stores, Registry: reg}
}
