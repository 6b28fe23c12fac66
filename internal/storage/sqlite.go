// Package storage provides SQLite-based persistence for run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only run summaries are stored, never cell patterns.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is the summary of one simulation session.
type Run struct {
	ID              int64
	RunID           string // uuid, generated by SaveRun when empty
	Host            string // "tui", "ssh", "gui" or "simulate"
	Rule            string
	Columns         int
	Rows            int
	Generations     int
	PeakPopulation  int
	FinalPopulation int
	Duration        time.Duration
	CreatedAt       time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			host TEXT NOT NULL,
			rule TEXT NOT NULL,
			grid_columns INTEGER NOT NULL DEFAULT 0,
			grid_rows INTEGER NOT NULL DEFAULT 0,
			generations INTEGER NOT NULL DEFAULT 0,
			peak_population INTEGER NOT NULL DEFAULT 0,
			final_population INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_rule ON runs(rule);
		CREATE INDEX IF NOT EXISTS idx_runs_longest ON runs(rule, generations DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run summary.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}
	res, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, host, rule, grid_columns, grid_rows, generations, peak_population, final_population, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.Host,
		run.Rule,
		run.Columns,
		run.Rows,
		run.Generations,
		run.PeakPopulation,
		run.FinalPopulation,
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, run_id, host, rule, grid_columns, grid_rows, generations,
		        peak_population, final_population, duration_ms, created_at`

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var run Run
	var durationMs int64
	var createdAt any
	err := sc.Scan(
		&run.ID,
		&run.RunID,
		&run.Host,
		&run.Rule,
		&run.Columns,
		&run.Rows,
		&run.Generations,
		&run.PeakPopulation,
		&run.FinalPopulation,
		&durationMs,
		&createdAt,
	)
	if err != nil {
		return run, err
	}
	run.Duration = time.Duration(durationMs) * time.Millisecond

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		run.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			run.CreatedAt = parsed
		}
	}
	return run, nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// LongestRuns retrieves the runs with the most generations for a rule.
// An empty rule matches every run.
func (s *Store) LongestRuns(rule string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR rule = ?
		 ORDER BY generations DESC, id ASC
		 LIMIT ?`,
		rule, rule, limit,
	)
}

// RunByID retrieves a run by its run ID.
// Returns nil without error when no such run exists.
func (s *Store) RunByID(runID string) (*Run, error) {
	run, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE run_id = ?`,
		runID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &run, nil
}

// PeakPopulation returns the highest population recorded for a rule.
// Returns 0 if no runs exist.
func (s *Store) PeakPopulation(rule string) (int, error) {
	var peak sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(peak_population) FROM runs WHERE rule = ?",
		rule,
	).Scan(&peak)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query peak population: %w", err)
	}

	if !peak.Valid {
		return 0, nil
	}

	return int(peak.Int64), nil
}

// ClearRuns deletes every recorded run.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
