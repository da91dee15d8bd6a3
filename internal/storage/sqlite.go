// Package storage provides SQLite-based persistence for solver simulation
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for simulation results.
type Store struct {
	db *sql.DB
}

// SimulationResult is a single recorded solver game.
type SimulationResult struct {
	ID        int64
	Preset    string
	Cols      int
	Rows      int
	Mines     int
	Seed      int64
	Won       bool
	Moves     int
	Guesses   int
	Revealed  int
	CreatedAt time.Time
}

// PresetStats contains aggregated statistics for one preset.
type PresetStats struct {
	Preset     string
	Games      int
	Wins       int
	WinRate    float64
	AvgMoves   float64
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS simulations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			preset TEXT NOT NULL,
			cols INTEGER NOT NULL,
			rows INTEGER NOT NULL,
			mines INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			won INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			guesses INTEGER NOT NULL,
			revealed INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_simulations_preset ON simulations(preset);
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

// SaveResult records one simulation outcome.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r SimulationResult) (int64, error) {
	won := 0
	if r.Won {
		won = 1
	}

	result, err := s.db.Exec(
		`INSERT INTO simulations (preset, cols, rows, mines, seed, won, moves, guesses, revealed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Preset, r.Cols, r.Rows, r.Mines, r.Seed, won, r.Moves, r.Guesses, r.Revealed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent results for the given preset.
func (s *Store) RecentResults(preset string, limit int) ([]SimulationResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, preset, cols, rows, mines, seed, won, moves, guesses, revealed, created_at
		 FROM simulations
		 WHERE preset = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		preset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []SimulationResult
	for rows.Next() {
		var r SimulationResult
		var won int
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Preset, &r.Cols, &r.Rows, &r.Mines, &r.Seed,
			&won, &r.Moves, &r.Guesses, &r.Revealed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Won = won != 0
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats retrieves aggregated statistics for a preset.
// Returns zeroed stats when no games are recorded.
func (s *Store) Stats(preset string) (*PresetStats, error) {
	stats := &PresetStats{Preset: preset}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(AVG(moves), 0)
		 FROM simulations WHERE preset = ?`,
		preset,
	).Scan(&stats.Games, &stats.Wins, &stats.AvgMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	if stats.Games > 0 {
		stats.WinRate = float64(stats.Wins) / float64(stats.Games)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM simulations WHERE preset = ? ORDER BY id DESC LIMIT 1`,
		preset,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// ClearResults deletes all results for the given preset.
func (s *Store) ClearResults(preset string) error {
	_, err := s.db.Exec("DELETE FROM simulations WHERE preset = ?", preset)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or string.
func parseTimestamp(v any) time.Time {
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
