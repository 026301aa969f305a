// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID           int64
	LayoutID     string
	Score        int
	Rays         int
	WrongGuesses int
	Solved       bool // false when the player revealed the atoms
	CreatedAt    time.Time
}

// LayoutStats contains aggregated statistics for a layout.
type LayoutStats struct {
	LayoutID   string
	Games      int
	Solved     int
	HighScore  int     // Best solved score, 0 if none
	AvgScore   float64 // Over solved games
	AvgRays    float64 // Over all games
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			layout_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			rays INTEGER NOT NULL DEFAULT 0,
			wrong_guesses INTEGER NOT NULL DEFAULT 0,
			solved INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_layout_id ON results(layout_id);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(layout_id, solved, score DESC);
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

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.LayoutID == "" {
		return 0, errors.New("storage: result has no layout id")
	}

	res, err := s.db.Exec(
		"INSERT INTO results (layout_id, score, rays, wrong_guesses, solved) VALUES (?, ?, ?, ?, ?)",
		r.LayoutID, r.Score, r.Rays, r.WrongGuesses, r.Solved,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the best N solved games for the given layout.
// Results are ordered by score descending, then by fewest rays.
func (s *Store) TopScores(layoutID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.query(
		`SELECT id, layout_id, score, rays, wrong_guesses, solved, created_at
		 FROM results
		 WHERE layout_id = ? AND solved = 1
		 ORDER BY score DESC, rays ASC, id ASC
		 LIMIT ?`,
		layoutID, limit,
	)
}

// Recent retrieves the most recent games on any layout, solved or not.
func (s *Store) Recent(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.query(
		`SELECT id, layout_id, score, rays, wrong_guesses, solved, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) query(q string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.LayoutID, &r.Score, &r.Rays, &r.WrongGuesses, &r.Solved, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// HighScore returns the best solved score for the given layout.
// Returns 0 if the layout was never solved.
func (s *Store) HighScore(layoutID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE layout_id = ? AND solved = 1",
		layoutID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all results for the given layout.
func (s *Store) ClearScores(layoutID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE layout_id = ?", layoutID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a specific layout.
func (s *Store) Stats(layoutID string) (*LayoutStats, error) {
	stats := &LayoutStats{LayoutID: layoutID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(solved), 0),
		        COALESCE(MAX(CASE WHEN solved = 1 THEN score END), 0),
		        COALESCE(AVG(CASE WHEN solved = 1 THEN score END), 0),
		        COALESCE(AVG(rays), 0),
		        MAX(created_at)
		 FROM results WHERE layout_id = ?`,
		layoutID,
	).Scan(&stats.Games, &stats.Solved, &stats.HighScore, &stats.AvgScore, &stats.AvgRays, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get layout stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllStats retrieves statistics for every layout that has been played,
// ordered by layout ID.
func (s *Store) AllStats() ([]LayoutStats, error) {
	rows, err := s.db.Query(
		`SELECT layout_id, COUNT(*), SUM(solved),
		        COALESCE(MAX(CASE WHEN solved = 1 THEN score END), 0),
		        COALESCE(AVG(CASE WHEN solved = 1 THEN score END), 0),
		        AVG(rays), MAX(created_at)
		 FROM results
		 GROUP BY layout_id
		 ORDER BY layout_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all layout stats: %w", err)
	}
	defer rows.Close()

	var all []LayoutStats
	for rows.Next() {
		var st LayoutStats
		var lastPlayed any
		if err := rows.Scan(&st.LayoutID, &st.Games, &st.Solved, &st.HighScore, &st.AvgScore, &st.AvgRays, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		all = append(all, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return all, nil
}

// parseTime handles the datetime column as either time.Time or string.
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
