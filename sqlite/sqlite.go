// Package sqlite provides the SQLite-backed article archive.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fwojciec/seqscrape"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// SchemaVersion is stored in PRAGMA user_version once the archive tables
// exist.
const SchemaVersion = 1

// archiveSchema creates the tables of SchemaVersion.
const archiveSchema = `
	CREATE TABLE IF NOT EXISTS articles (
		id TEXT PRIMARY KEY,
		run_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		source_url TEXT NOT NULL,
		selector TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		content_hash TEXT NOT NULL DEFAULT '',
		fetched_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_articles_run_id ON articles(run_id);
	CREATE INDEX IF NOT EXISTS idx_articles_source_url ON articles(source_url);
`

// pragma is a connection setting applied on open.
type pragma struct {
	name, value string
	fileOnly    bool
}

var pragmas = []pragma{
	{name: "busy_timeout", value: "5000"},
	{name: "journal_mode", value: "WAL", fileOnly: true},
}

// DB is an archive database. A single connection is used since SQLite
// allows one writer at a time.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a DB for the archive at path.
// Use ":memory:" for an in-memory archive.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open connects to the archive and brings its schema up to SchemaVersion.
// An archive written by a newer schema returns EINVALID.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open archive %s: %w", db.path, err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.prepare(conn); err != nil {
		conn.Close()
		return err
	}
	db.db = conn
	return nil
}

func (db *DB) prepare(conn *sql.DB) error {
	if err := conn.Ping(); err != nil {
		return fmt.Errorf("failed to connect to archive %s: %w", db.path, err)
	}
	for _, p := range pragmas {
		if p.fileOnly && db.path == ":memory:" {
			continue
		}
		if _, err := conn.Exec(fmt.Sprintf("PRAGMA %s = %s", p.name, p.value)); err != nil {
			return fmt.Errorf("failed to set %s: %w", p.name, err)
		}
	}
	return migrate(conn)
}

// migrate creates the archive tables unless user_version already matches.
func migrate(conn *sql.DB) error {
	var version int
	if err := conn.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	switch {
	case version == SchemaVersion:
		return nil
	case version > SchemaVersion:
		return seqscrape.Errorf(seqscrape.EINVALID,
			"archive schema version %d is newer than supported version %d", version, SchemaVersion)
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin migration: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(archiveSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	return tx.Commit()
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db == nil {
		return nil
	}
	return db.db.Close()
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}
