// Package storage persists the high score and run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection. It satisfies
// runner.HighScoreStore and keeps a history of finished runs.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished run.
type RunRecord struct {
	ID        string
	Score     int
	Coins     int
	Ticks     int
	Seed      int64
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions share one store; serialize writers.
	db.SetMaxOpenConns(1)

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

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
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

// LoadHighScore returns the persisted high score, or 0 if none was saved.
func (s *Store) LoadHighScore() (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_score WHERE id = 1").Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SaveHighScore stores score if it beats the persisted value. A lower
// score never overwrites a higher one, even across concurrent sessions.
func (s *Store) SaveHighScore(score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_score (id, score) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE
		 SET score = excluded.score, updated_at = CURRENT_TIMESTAMP
		 WHERE excluded.score > high_score.score`,
		score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// SaveRun appends a finished run to the history. A run ID is generated
// when rec.ID is empty. Returns the stored ID.
func (s *Store) SaveRun(rec RunRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		"INSERT INTO runs (run_id, score, coins, ticks, seed) VALUES (?, ?, ?, ?, ?)",
		rec.ID, rec.Score, rec.Coins, rec.Ticks, rec.Seed,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return rec.ID, nil
}

// TopRuns retrieves the best N runs ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT run_id, score, coins, ticks, seed, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &r.Coins, &r.Ticks, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunCount returns the number of recorded runs.
func (s *Store) RunCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// ClearRuns deletes the run history. The high score is kept.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
