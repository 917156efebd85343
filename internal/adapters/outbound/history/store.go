package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seokraft/seokraft/internal/domain"
	_ "modernc.org/sqlite"
)

const dbFile = ".seokraft/history.db"

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	path        TEXT NOT NULL,
	score       INTEGER NOT NULL,
	grade       TEXT NOT NULL,
	is_valid    INTEGER NOT NULL,
	criticals   INTEGER NOT NULL,
	majors      INTEGER NOT NULL,
	warnings    INTEGER NOT NULL,
	commit_hash TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

// Store implements domain.HistoryStore on a per-project SQLite database
// under .seokraft/.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database for projectPath and ensures
// the schema exists.
func Open(projectPath string) (*Store, error) {
	path := filepath.Join(projectPath, dbFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Save(entry domain.HistoryEntry) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (id, path, score, grade, is_valid, criticals, majors, warnings, commit_hash, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Path, entry.Score, entry.Grade, boolToInt(entry.IsValid),
		entry.Criticals, entry.Majors, entry.Warnings, entry.CommitHash, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("saving history entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, oldest first, so score deltas render
// in chronological order.
func (s *Store) Recent(limit int) ([]domain.HistoryEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, path, score, grade, is_valid, criticals, majors, warnings, commit_hash, created_at
		 FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		var valid int
		if err := rows.Scan(&e.ID, &e.Path, &e.Score, &e.Grade, &valid,
			&e.Criticals, &e.Majors, &e.Warnings, &e.CommitHash, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		e.IsValid = valid != 0
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Flip newest-first query order to oldest-first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func (s *Store) Close() error { return s.db.Close() }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
