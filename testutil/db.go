// Package testutil provides shared helpers for tests that need a real
// database. The store is embedded SQLite, so unlike a client/server database
// there is nothing to provision: every test gets a fresh in-memory store and
// no environment variables are required.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/tlcheah2/backend-coding-test/migrations"
)

// NewDB opens a fresh in-memory SQLite database with all migrations applied.
// The database is private to the calling test and closed automatically when
// the test (and all its subtests) finish.
func NewDB(t *testing.T) *sql.DB {
	t.Helper()

	db := NewRawDB(t)

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		t.Fatalf("testutil.NewDB: create goose provider: %v", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		t.Fatalf("testutil.NewDB: run migrations: %v", err)
	}

	return db
}

// NewRawDB opens a fresh in-memory SQLite database with no schema applied.
// Use this when the test itself exercises migrations; everything else should
// call NewDB.
func NewRawDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("testutil.NewRawDB: open: %v", err)
	}

	// An in-memory database exists per connection; pinning the pool to one
	// connection makes every statement see the same store.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		t.Fatalf("testutil.NewRawDB: ping: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}
