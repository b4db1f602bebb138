// Package storage provides SQLite-based persistence for headless simulation
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for match records.
type Store struct {
	db *sql.DB
}

// MatchRecord is the outcome of one simulated match.
type MatchRecord struct {
	ID           int64
	RunID        string // Groups matches of one `pong sim` invocation
	Variant      string
	Difficulty   string
	Seed         int64
	Score1       int
	Score2       int
	Winner       int  // 0 when unfinished, else 1 or 2
	Finished     bool // False if the tick budget ran out first
	Ticks        int64
	Serves       int
	Hits         int
	WallBounces  int
	LongestRally int
	CreatedAt    time.Time
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
		CREATE TABLE IF NOT EXISTS sim_matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			variant TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			winner INTEGER NOT NULL DEFAULT 0,
			finished INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			serves INTEGER NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			wall_bounces INTEGER NOT NULL DEFAULT 0,
			longest_rally INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sim_matches_variant ON sim_matches(variant);
		CREATE INDEX IF NOT EXISTS idx_sim_matches_run ON sim_matches(run_id);
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

// SaveMatch records a simulated match.
// A zero CreatedAt is filled in by the database.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(r MatchRecord) (int64, error) {
	var createdAt any
	if !r.CreatedAt.IsZero() {
		createdAt = r.CreatedAt.UTC().Format(timeLayout)
	}

	result, err := s.db.Exec(
		`INSERT INTO sim_matches
		 (run_id, variant, difficulty, seed, score1, score2, winner, finished,
		  ticks, serves, hits, wall_bounces, longest_rally, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, COALESCE(?, CURRENT_TIMESTAMP))`,
		r.RunID, r.Variant, r.Difficulty, r.Seed, r.Score1, r.Score2, r.Winner, r.Finished,
		r.Ticks, r.Serves, r.Hits, r.WallBounces, r.LongestRally, createdAt,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const matchColumns = `id, run_id, variant, difficulty, seed, score1, score2, winner, finished,
	ticks, serves, hits, wall_bounces, longest_rally, created_at`

// RecentMatches retrieves the most recent matches for a variant.
// An empty variant matches all variants.
func (s *Store) RecentMatches(variant string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM sim_matches
		 WHERE ? = '' OR variant = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		variant, variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows)
}

// RunMatches retrieves every match of one simulation run in insertion order.
func (s *Store) RunMatches(runID string) ([]MatchRecord, error) {
	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM sim_matches
		 WHERE run_id = ?
		 ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows)
}

// Variants returns every variant with at least one recorded match, sorted.
func (s *Store) Variants() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT variant FROM sim_matches ORDER BY variant`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query variants: %w", err)
	}
	defer rows.Close()

	var variants []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan variant: %w", err)
		}
		variants = append(variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return variants, nil
}

// ClearMatches deletes all matches for the given variant.
// An empty variant clears every record.
func (s *Store) ClearMatches(variant string) error {
	_, err := s.db.Exec("DELETE FROM sim_matches WHERE ? = '' OR variant = ?", variant, variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

func scanMatches(rows *sql.Rows) ([]MatchRecord, error) {
	var records []MatchRecord
	for rows.Next() {
		var r MatchRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.RunID, &r.Variant, &r.Difficulty, &r.Seed,
			&r.Score1, &r.Score2, &r.Winner, &r.Finished,
			&r.Ticks, &r.Serves, &r.Hits, &r.WallBounces, &r.LongestRally,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// timeLayout matches SQLite's CURRENT_TIMESTAMP, in UTC.
const timeLayout = "2006-01-02 15:04:05"

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// VariantStats contains aggregated statistics for a variant.
type VariantStats struct {
	Variant      string
	Matches      int
	Finished     int
	Player1Wins  int
	Player2Wins  int
	AvgTicks     float64
	AvgHits      float64
	LongestRally int
	LastRun      time.Time
}

// GetVariantStats retrieves aggregated statistics for a specific variant.
func (s *Store) GetVariantStats(variant string) (*VariantStats, error) {
	stats := &VariantStats{Variant: variant}
	var lastRun any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(finished), 0),
		        COALESCE(SUM(winner = 1), 0),
		        COALESCE(SUM(winner = 2), 0),
		        COALESCE(AVG(ticks), 0),
		        COALESCE(AVG(hits), 0),
		        COALESCE(MAX(longest_rally), 0),
		        MAX(created_at)
		 FROM sim_matches WHERE variant = ?`,
		variant,
	).Scan(&stats.Matches, &stats.Finished, &stats.Player1Wins, &stats.Player2Wins,
		&stats.AvgTicks, &stats.AvgHits, &stats.LongestRally, &lastRun)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}
	stats.LastRun = parseTime(lastRun)

	return stats, nil
}

// GetAllVariantStats retrieves statistics for every variant that has been simulated.
func (s *Store) GetAllVariantStats() (map[string]*VariantStats, error) {
	variants, err := s.Variants()
	if err != nil {
		return nil, err
	}

	stats := make(map[string]*VariantStats, len(variants))
	for _, v := range variants {
		vs, err := s.GetVariantStats(v)
		if err != nil {
			return nil, err
		}
		stats[v] = vs
	}
	return stats, nil
}
