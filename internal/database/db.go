// Package database persists deals, their activity logs, and the saved grid
// view state in a local sqlite file.
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sqlite connection.
type Database struct {
	DB *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	d := &Database{DB: db}
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying connection.
func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS deals (
			id TEXT PRIMARY KEY,
			deal_name TEXT NOT NULL,
			company TEXT NOT NULL DEFAULT '',
			owner TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'new',
			value REAL NOT NULL DEFAULT 0,
			probability INTEGER NOT NULL DEFAULT 0,
			expected_close_date TEXT NOT NULL DEFAULT '',
			last_activity TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS activities (
			id TEXT PRIMARY KEY,
			deal_id TEXT NOT NULL,
			type TEXT NOT NULL,
			description TEXT NOT NULL,
			date TEXT NOT NULL DEFAULT '',
			user TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY(deal_id) REFERENCES deals(id)
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}

	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
