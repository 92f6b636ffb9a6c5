// Package sqlite is the embedded storage backend. It keeps the same layout as
// the Postgres backend in a single file and needs no external server.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

type Config struct {
	Path string
}

type DB struct {
	path string
	conn *sql.DB
}

func Init(ctx context.Context, cfg Config) (*DB, error) {
	const fn = "SQLite:Init"
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", cfg.Path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrOpenFailed, err)
	}
	// One writer at a time; SQLite serializes writes anyway.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrOpenFailed, err)
	}

	db := &DB{path: cfg.Path, conn: conn}
	if err := db.Migrate(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) Migrate(ctx context.Context) error {
	const fn = "SQLite:Migrate"
	slog.InfoContext(ctx, "Applying sqlite schema...", "path", db.path)
	if _, err := db.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrOpenFailed, err)
	}
	return nil
}

func (db *DB) Close() {
	db.conn.Close()
}
