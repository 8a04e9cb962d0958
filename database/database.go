package database

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"terminaldiary/database/migrations"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

// Opens (creating if needed) the sqlite file at path and migrates it
func Connect(path string) (*sqlx.DB, error) {
	// Escaped, a '?' or '#' in the path would otherwise start the DSN options
	db, err := sqlx.Connect("sqlite3", "file:"+url.PathEscape(path)+"?mode=rwc")
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}

	err = InitSchemas(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func DatabaseTableIsSetUp(db *sqlx.DB, name string) (bool, error) {
	var count int
	err := db.Get(&count, `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=$1;`, name)
	if err != nil {
		return false, fmt.Errorf("FAILED TO CHECK IF TABLE %q EXISTS: %w", name, err)
	}

	return count > 0, nil
}

// Brings the schema up to the latest embedded migration.
// Goose keeps track of the applied version, so this is safe to run on every start.
func InitSchemas(db *sqlx.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	err := goose.SetDialect("sqlite3")
	if err != nil {
		return &StorageError{Op: "migrate", Err: err}
	}

	before, err := DatabaseTableIsSetUp(db, "diary_entries")
	if err != nil {
		return &StorageError{Op: "migrate", Err: err}
	}

	err = goose.UpContext(context.Background(), db.DB, ".")
	if err != nil {
		return &StorageError{Op: "migrate", Err: err}
	}

	if !before {
		slog.Info("Set up `diary_entries` schema")
	}

	return nil
}
