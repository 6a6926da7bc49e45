// Package ledger records curation history in a local sqlite database:
// one row per applied run and one row per moved joke, so batch
// mutations stay reviewable after the fact.
package ledger

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id         TEXT PRIMARY KEY,
	min_confidence REAL NOT NULL,
	applied        INTEGER NOT NULL,
	skipped        INTEGER NOT NULL,
	created_at     TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS moves (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     TEXT NOT NULL REFERENCES runs(run_id),
	from_level INTEGER NOT NULL,
	to_level   INTEGER NOT NULL,
	joke       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS moves_run_id ON moves(run_id);
`

// Ledger is a handle to the curation history database.
type Ledger struct {
	db *sql.DB
}

// Open opens (creating if needed) the ledger database at path.
func Open(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init ledger schema: %w", err)
	}
	return &Ledger{db: db}, nil
}

// Close releases the database handle.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// RecordRun stores one applied curation run.
func (l *Ledger) RecordRun(runID string, minConfidence float64, applied int, skipped int) error {
	_, err := l.db.Exec(
		`INSERT INTO runs (run_id, min_confidence, applied, skipped, created_at) VALUES (?, ?, ?, ?, ?)`,
		runID, minConfidence, applied, skipped, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// RecordMove stores one applied joke move.
func (l *Ledger) RecordMove(runID string, fromLevel int, toLevel int, joke string) error {
	_, err := l.db.Exec(
		`INSERT INTO moves (run_id, from_level, to_level, joke) VALUES (?, ?, ?, ?)`,
		runID, fromLevel, toLevel, joke,
	)
	if err != nil {
		return fmt.Errorf("insert move: %w", err)
	}
	return nil
}

// Run is one recorded curation run.
type Run struct {
	RunID         string
	MinConfidence float64
	Applied       int
	Skipped       int
	CreatedAt     string
}

// Move is one recorded joke move.
type Move struct {
	RunID     string
	FromLevel int
	ToLevel   int
	Joke      string
}

// Runs returns all recorded runs, newest first.
func (l *Ledger) Runs() ([]Run, error) {
	rows, err := l.db.Query(`SELECT run_id, min_confidence, applied, skipped, created_at FROM runs ORDER BY created_at DESC, run_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	runs := make([]Run, 0)
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.RunID, &run.MinConfidence, &run.Applied, &run.Skipped, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Moves returns the moves recorded for one run, in insertion order.
func (l *Ledger) Moves(runID string) ([]Move, error) {
	rows, err := l.db.Query(`SELECT run_id, from_level, to_level, joke FROM moves WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query moves: %w", err)
	}
	defer func() { _ = rows.Close() }()

	moves := make([]Move, 0)
	for rows.Next() {
		var move Move
		if err := rows.Scan(&move.RunID, &move.FromLevel, &move.ToLevel, &move.Joke); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		moves = append(moves, move)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate moves: %w", err)
	}
	return moves, nil
}
