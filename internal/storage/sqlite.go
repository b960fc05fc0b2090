// Package storage provides SQLite-based persistence for game saves and
// scores. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tycoon/internal/actor"
)

// Store manages the SQLite database connection for save, score and
// history persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single sprint result record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Profile   string
	Score     int
	CreatedAt time.Time
}

// WorthSample is one recorded net-worth measurement for a profile.
type WorthSample struct {
	ID        int64
	Profile   string
	Worth     float64
	CreatedAt time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			profile TEXT NOT NULL,
			key TEXT NOT NULL,
			num_value REAL,
			str_value TEXT,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (profile, key)
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			profile TEXT NOT NULL DEFAULT 'local',
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS worth_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL,
			worth REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_worth_profile ON worth_history(profile, created_at DESC);
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

// SaveSlot returns the key-value save view for one profile. The slot
// satisfies the actor store contract: reads fall back to the caller's
// default when a key is missing.
func (s *Store) SaveSlot(profile string) *SaveSlot {
	return &SaveSlot{store: s, profile: profile}
}

// DeleteSave removes all saved state and worth history for a profile.
// Sprint scores are kept; they are results, not progress.
func (s *Store) DeleteSave(profile string) error {
	if _, err := s.db.Exec("DELETE FROM saves WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot delete save: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM worth_history WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot delete worth history: %w", err)
	}
	return nil
}

// SaveScore records a sprint result for the given game and profile.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID, profile string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, profile, score) VALUES (?, ?, ?)",
		gameID, profile, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game across all
// profiles. Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, profile, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanScores(rows)
}

// AllScores retrieves all scores for the given game (no limit).
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, profile, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanScores(rows)
}

// scanScores reads score rows into entries.
func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Profile, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTimestamp handles both time.Time and string datetime values,
// depending on how the driver returns them.
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

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// RecordWorth appends a net-worth sample for the profile.
func (s *Store) RecordWorth(profile string, worth float64) error {
	_, err := s.db.Exec(
		"INSERT INTO worth_history (profile, worth) VALUES (?, ?)",
		profile, worth,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record worth: %w", err)
	}
	return nil
}

// WorthHistory retrieves the most recent worth samples for a profile,
// newest first.
func (s *Store) WorthHistory(profile string, limit int) ([]WorthSample, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, profile, worth, created_at
		 FROM worth_history
		 WHERE profile = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query worth history: %w", err)
	}
	defer rows.Close()

	var samples []WorthSample
	for rows.Next() {
		var w WorthSample
		var createdAt any
		if err := rows.Scan(&w.ID, &w.Profile, &w.Worth, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		w.CreatedAt = parseTimestamp(createdAt)
		samples = append(samples, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return samples, nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	// Get count, high, avg, total
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// SaveSlot is the key-value view of one profile's save.
type SaveSlot struct {
	store   *Store
	profile string
}

// Ensure SaveSlot implements the actor store contract.
var _ actor.Store = (*SaveSlot)(nil)

// Profile returns the profile this slot reads and writes.
func (s *SaveSlot) Profile() string {
	return s.profile
}

// SetNumber writes a numeric value under key.
func (s *SaveSlot) SetNumber(key string, v float64) error {
	_, err := s.store.db.Exec(
		`INSERT INTO saves (profile, key, num_value, str_value, updated_at)
		 VALUES (?, ?, ?, NULL, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile, key) DO UPDATE SET
		   num_value = excluded.num_value,
		   str_value = NULL,
		   updated_at = CURRENT_TIMESTAMP`,
		s.profile, key, v,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set number %q: %w", key, err)
	}
	return nil
}

// Number reads a numeric value, returning def when the key is absent or
// holds no number.
func (s *SaveSlot) Number(key string, def float64) float64 {
	var v sql.NullFloat64
	err := s.store.db.QueryRow(
		"SELECT num_value FROM saves WHERE profile = ? AND key = ?",
		s.profile, key,
	).Scan(&v)
	if err != nil || !v.Valid {
		return def
	}
	return v.Float64
}

// SetString writes a string value under key.
func (s *SaveSlot) SetString(key, v string) error {
	_, err := s.store.db.Exec(
		`INSERT INTO saves (profile, key, num_value, str_value, updated_at)
		 VALUES (?, ?, NULL, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile, key) DO UPDATE SET
		   num_value = NULL,
		   str_value = excluded.str_value,
		   updated_at = CURRENT_TIMESTAMP`,
		s.profile, key, v,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set string %q: %w", key, err)
	}
	return nil
}

// String reads a string value, returning def when the key is absent or
// holds no string.
func (s *SaveSlot) String(key, def string) string {
	var v sql.NullString
	err := s.store.db.QueryRow(
		"SELECT str_value FROM saves WHERE profile = ? AND key = ?",
		s.profile, key,
	).Scan(&v)
	if err != nil || !v.Valid {
		return def
	}
	return v.String
}
