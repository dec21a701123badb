// SPDX-License-Identifier: MIT
package edrun

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Schema for the runs registry table.
const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	dir TEXT NOT NULL,
	element TEXT,
	status TEXT NOT NULL,
	exit_code INTEGER NOT NULL,
	created INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created);
`

// Run statuses recorded in the registry.
const (
	StatusOK      = "ok"
	StatusFailed  = "failed"
	StatusTimeout = "timeout"
)

// RunRecord is one registry row.
type RunRecord struct {
	ID       int64     `json:"id"`
	Dir      string    `json:"dir"`
	Element  string    `json:"element,omitempty"`
	Status   string    `json:"status"`
	ExitCode int       `json:"exit_code"`
	Created  time.Time `json:"created"`
}

// Store is the SQLite-backed run registry.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the registry database at path and ensures
// the schema exists.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("edrun: open registry: %w", err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("edrun: init registry schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record inserts one run and returns its registry id.
func (s *Store) Record(ctx context.Context, rec RunRecord) (int64, error) {
	created := rec.Created
	if created.IsZero() {
		created = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (dir, element, status, exit_code, created) VALUES (?, ?, ?, ?, ?)`,
		rec.Dir, rec.Element, rec.Status, rec.ExitCode, created.Unix())
	if err != nil {
		return 0, fmt.Errorf("edrun: record run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("edrun: record run: %w", err)
	}

	return id, nil
}

// List returns all recorded runs, newest first.
func (s *Store) List(ctx context.Context) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, dir, element, status, exit_code, created FROM runs ORDER BY created DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("edrun: list runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		var created int64
		if err := rows.Scan(&rec.ID, &rec.Dir, &rec.Element, &rec.Status, &rec.ExitCode, &created); err != nil {
			return nil, fmt.Errorf("edrun: scan run: %w", err)
		}
		rec.Created = time.Unix(created, 0)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("edrun: list runs: %w", err)
	}

	return out, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }
