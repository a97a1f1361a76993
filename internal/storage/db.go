// Package storage is the durable local store: an embedded SQLite database
// holding the program/settings/exercise documents, per-user workout blobs,
// and body measurement records.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"
)

// DBFileName is the database file created under the data directory.
const DBFileName = "ironforge.db"

// DB wraps the embedded database and provides repository methods.
type DB struct {
	sql *sql.DB
}

// Open opens (or creates) the SQLite database under dir.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, DBFileName))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &DB{sql: db}, nil
}

// Close closes the underlying database.
func (db *DB) Close() error {
	return db.sql.Close()
}

// RunMigrations applies all pending migrations from the given directory to
// the database under dir.
func RunMigrations(dir, migrationsPath string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir %s: %w", dir, err)
	}

	dsn := "sqlite://" + filepath.Join(dir, DBFileName)
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
