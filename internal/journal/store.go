package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store manages the move journal backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the journal database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// BeginRun inserts a new run row and returns it.
func (s *Store) BeginRun(ctx context.Context, sourceDir string) (*Run, error) {
	run := &Run{
		ID:        uuid.NewString(),
		SourceDir: sourceDir,
		StartedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (id, source_dir, started_at) VALUES (?, ?, ?)`,
		run.ID,
		run.SourceDir,
		run.StartedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// RecordMove appends one relocated file to the run.
func (s *Store) RecordMove(ctx context.Context, runID, sourceName, categoryName, destination string) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO moves (run_id, source_name, category, destination, moved_at) VALUES (?, ?, ?, ?, ?)`,
		runID,
		sourceName,
		categoryName,
		destination,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert move: %w", err)
	}
	return nil
}

// FinishRun stamps the run with its final counts and completion time.
func (s *Store) FinishRun(ctx context.Context, runID string, organized, total int) error {
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE runs SET finished_at = ?, organized_count = ?, total_count = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano),
		organized,
		total,
		runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("finish run: run %s not found", runID)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, source_dir, started_at, finished_at, organized_count, total_count
         FROM runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			startedAt  string
			finishedAt sql.NullString
		)
		if err := rows.Scan(&run.ID, &run.SourceDir, &startedAt, &finishedAt, &run.OrganizedCount, &run.TotalCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartedAt = parseTimestamp(startedAt)
		if finishedAt.Valid {
			run.FinishedAt = parseTimestamp(finishedAt.String)
			run.Finished = true
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// MovesForRun returns the moves of a run in insertion order.
func (s *Store) MovesForRun(ctx context.Context, runID string) ([]Move, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, run_id, source_name, category, destination, moved_at
         FROM moves WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query moves: %w", err)
	}
	defer rows.Close()

	var moves []Move
	for rows.Next() {
		var (
			move    Move
			movedAt string
		)
		if err := rows.Scan(&move.ID, &move.RunID, &move.SourceName, &move.Category, &move.Destination, &movedAt); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		move.MovedAt = parseTimestamp(movedAt)
		moves = append(moves, move)
	}
	return moves, rows.Err()
}

func parseTimestamp(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
