// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists one record per selection run in a local
// SQLite database. The store answers "did we already pick a paper for
// this date" and keeps past winners for the history command.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/CentML/paper-of-the-day/pkg/types"
)

const (
	defaultDir = "data"
	dbFile     = "history.db"
)

// Store manages the run-history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at dir/history.db and
// creates the schema if it does not exist.
func Open(cfg types.HistoryConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		date TEXT PRIMARY KEY,
		candidates INTEGER NOT NULL,
		relevant INTEGER NOT NULL,
		winner_id TEXT NOT NULL DEFAULT '',
		summary TEXT NOT NULL DEFAULT '',
		posted INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record upserts the record for its date. Re-running a date overwrites
// the earlier record.
func (s *Store) Record(ctx context.Context, rec types.RunRecord) error {
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO runs (date, candidates, relevant, winner_id, summary, posted, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Date, rec.Candidates, rec.Relevant, rec.WinnerID, rec.Summary,
		boolToInt(rec.Posted), createdAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording run for %s: %w", rec.Date, err)
	}
	return nil
}

// Find returns the record for a date (formatted 2006-01-02), or nil
// when the date has no record.
func (s *Store) Find(ctx context.Context, date string) (*types.RunRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT date, candidates, relevant, winner_id, summary, posted, created_at
		 FROM runs WHERE date = ?`, date)

	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding run for %s: %w", date, err)
	}
	return &rec, nil
}

// List returns up to limit records, most recent date first. A limit of
// 0 or less means all records.
func (s *Store) List(ctx context.Context, limit int) ([]types.RunRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, candidates, relevant, winner_id, summary, posted, created_at
		 FROM runs ORDER BY date DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var recs []types.RunRecord
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return recs, nil
}

func scanRecord(scan func(...any) error) (types.RunRecord, error) {
	var rec types.RunRecord
	var posted int
	var createdAt string
	if err := scan(&rec.Date, &rec.Candidates, &rec.Relevant, &rec.WinnerID, &rec.Summary, &posted, &createdAt); err != nil {
		return types.RunRecord{}, err
	}
	rec.Posted = posted != 0
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		rec.CreatedAt = t
	}
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
