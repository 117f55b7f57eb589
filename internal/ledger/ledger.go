// Copyright Fieber IT, 2026. All rights reserved.

// Package ledger records completed renders in a small SQLite database so
// repeat runs can skip sources that have not changed.
package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const dbFile = "vcard2pdf.db"

// Ledger tracks which source files have been rendered and when.
type Ledger struct {
	db *sql.DB
}

// Open opens or creates the render ledger at dir/vcard2pdf.db, creating
// the schema if needed.
func Open(dir string) (*Ledger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS renders (
		source TEXT PRIMARY KEY,
		output TEXT NOT NULL,
		source_mod_time TEXT NOT NULL,
		rendered_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Close releases the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// ShouldSkip reports whether source is already rendered: its recorded
// mod-time matches and the recorded output file still exists. Any lookup
// problem counts as "render it again".
func (l *Ledger) ShouldSkip(source string, modTime time.Time) bool {
	var output, storedModTime string
	err := l.db.QueryRow(
		`SELECT output, source_mod_time FROM renders WHERE source = ?`, source,
	).Scan(&output, &storedModTime)
	if err != nil {
		return false
	}
	if storedModTime != formatModTime(modTime) {
		return false
	}
	_, err = os.Stat(output)
	return err == nil
}

// Record upserts the render row for source after a successful render.
func (l *Ledger) Record(source, output string, modTime time.Time) error {
	_, err := l.db.Exec(
		`INSERT INTO renders (source, output, source_mod_time, rendered_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(source) DO UPDATE SET
			output=excluded.output,
			source_mod_time=excluded.source_mod_time,
			rendered_at=excluded.rendered_at`,
		source, output, formatModTime(modTime), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording render of %s: %w", source, err)
	}
	return nil
}

func formatModTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
