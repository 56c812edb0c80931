// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a record of completed conversion runs in a
// SQLite database. History is advisory: failures here never fail a run.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfrip/pkg/types"
)

const dbFile = "pdfrip.db"

// defaultLimit bounds Recent when the caller passes a non-positive limit.
const defaultLimit = 20

// Store manages the run-history SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at cfg.Dir/pdfrip.db,
// creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		input_path TEXT NOT NULL,
		output_path TEXT NOT NULL,
		pages INTEGER NOT NULL,
		dpi INTEGER NOT NULL,
		pages_per_chunk INTEGER NOT NULL,
		languages TEXT,
		duration_ms INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts one completed run. The record's CreatedAt is used when
// set; otherwise the current UTC time is stored.
func (s *Store) Record(ctx context.Context, rec types.RunRecord) error {
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	languagesJSON, _ := json.Marshal(rec.Languages)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (input_path, output_path, pages, dpi, pages_per_chunk, languages, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.InputPath, rec.OutputPath, rec.Pages, rec.DPI, rec.PagesPerChunk,
		string(languagesJSON), rec.Duration.Milliseconds(), created.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first. A non-positive limit
// uses the default (20).
func (s *Store) Recent(ctx context.Context, limit int) ([]types.RunRecord, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return s.query(ctx, limit)
}

// All returns every recorded run, newest first.
func (s *Store) All(ctx context.Context) ([]types.RunRecord, error) {
	// SQLite treats a negative LIMIT as unbounded.
	return s.query(ctx, -1)
}

func (s *Store) query(ctx context.Context, limit int) ([]types.RunRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input_path, output_path, pages, dpi, pages_per_chunk, languages, duration_ms, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var records []types.RunRecord
	for rows.Next() {
		var (
			rec           types.RunRecord
			languagesJSON string
			durationMS    int64
			createdAt     string
		)
		if err := rows.Scan(&rec.ID, &rec.InputPath, &rec.OutputPath, &rec.Pages,
			&rec.DPI, &rec.PagesPerChunk, &languagesJSON, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if languagesJSON != "" && languagesJSON != "null" {
			if err := json.Unmarshal([]byte(languagesJSON), &rec.Languages); err != nil {
				return nil, fmt.Errorf("parsing languages for run %d: %w", rec.ID, err)
			}
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			rec.CreatedAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ExportYAML writes all runs, newest first, as a YAML document to w.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	records, err := s.All(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling runs: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
