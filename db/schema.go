// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// One row per night. The engine owns all invariants in memory and the
// store contract is get/upsert by token, so the night is persisted as a
// single JSON document rather than normalized tables. TEXT types keep the
// schema valid on both Postgres and SQLite.
const schema = `
CREATE TABLE IF NOT EXISTS night (
    token TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    scheduled_at TIMESTAMP NOT NULL,
    payload TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_night_scheduled_at ON night(scheduled_at);
`
