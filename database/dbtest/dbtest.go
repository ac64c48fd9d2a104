// Package dbtest opens throwaway SQLite databases with the real schema.
package dbtest

import (
	"path/filepath"
	"runtime"
	"testing"

	"canary-service/database"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// MigrationsDir returns the absolute path of database/migrations.
func MigrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "migrations")
}

// Open returns an in-memory database migrated with database.Migrate.
// The pool is capped at one connection so all queries see the same memory DB.
// The go-utils logger must be initialised first (logging.Init in TestMain).
func Open(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := database.Migrate(db, MigrationsDir()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
