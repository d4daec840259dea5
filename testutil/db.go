// Package testutil provides shared helpers for tests that need a real
// durable store. SQLite is embedded, so unlike a client-server database these
// helpers never need to skip — every test run gets its own migrated file in a
// temporary directory.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver for database/sql

	"github.com/santnier92/proyecto-gestion-viajes/migrations"
)

// NewMigratedDB opens a fresh SQLite database in t.TempDir() and applies all
// embedded migrations. Each call returns an isolated database, so tests never
// see each other's writes. The handle is closed automatically when the test
// (and all its subtests) finish.
func NewMigratedDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("testutil.NewMigratedDB: open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.PingContext(context.Background()); err != nil {
		t.Fatalf("testutil.NewMigratedDB: ping: %v", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		t.Fatalf("testutil.NewMigratedDB: create goose provider: %v", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		t.Fatalf("testutil.NewMigratedDB: run migrations: %v", err)
	}

	return db
}
