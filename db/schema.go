// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Persisted entry keys. These are the only two rows the service writes.
const (
	KeySession = "session"
	KeyVotes   = "votes"
)

// Open connects to the configured local store. databaseType selects the
// driver: "sqlite" (default local device storage) or "postgres".
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	driver := "sqlite"
	if databaseType == "postgres" {
		driver = "postgres"
	}
	conn, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	return conn, nil
}

// CreateSchema creates the key-value table backing persisted state.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Persisted application state: exactly two entries, "session" and "votes".
CREATE TABLE IF NOT EXISTS app_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

// Get reads the value stored under key. The second return reports
// whether the entry exists.
func Get(db *sql.DB, key string) (string, bool, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM app_state WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q entry: %w", key, err)
	}
	return value, true, nil
}

// Put upserts the value stored under key.
func Put(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to write %q entry: %w", key, err)
	}
	return nil
}

// Delete removes the entry under key; absent keys are a no-op.
func Delete(db *sql.DB, key string) error {
	_, err := db.Exec(`DELETE FROM app_state WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to delete %q entry: %w", key, err)
	}
	return nil
}
