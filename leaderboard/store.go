// Package leaderboard records finished playthroughs locally in sqlite and
// optionally forwards them to a remote scoreboard.
package leaderboard

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store keeps scores in a local sqlite database.
type Store struct {
	db *sql.DB
}

// Entry is one stored playthrough.
type Entry struct {
	ID        int64
	Name      string
	UserID    string
	GameSlug  string
	Score     int
	Completed bool
	CreatedAt time.Time
}

// Open creates or opens the database at path, creating parent directories
// and the schema as needed. A leading ~ expands to the home directory.
func Open(path string) (*Store, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("leaderboard: expand home: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("leaderboard: create %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("leaderboard: connect: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("leaderboard: migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			user_id TEXT NOT NULL DEFAULT '',
			game_slug TEXT NOT NULL,
			score INTEGER NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_slug, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore inserts one playthrough and returns its row id. An empty name
// is stored as Anonymous.
func (s *Store) SaveScore(e Entry) (int64, error) {
	if e.Name == "" {
		e.Name = "Anonymous"
	}
	res, err := s.db.Exec(
		"INSERT INTO scores (name, user_id, game_slug, score, completed) VALUES (?, ?, ?, ?, ?)",
		e.Name, e.UserID, e.GameSlug, e.Score, e.Completed,
	)
	if err != nil {
		return 0, fmt.Errorf("leaderboard: save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("leaderboard: inserted id: %w", err)
	}
	return id, nil
}

// TopScores returns up to limit entries for slug, best first. Ties keep
// insertion order.
func (s *Store) TopScores(slug string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, name, user_id, game_slug, score, completed, created_at
		 FROM scores
		 WHERE game_slug = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		slug, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: query scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.UserID, &e.GameSlug, &e.Score, &e.Completed, &createdAt); err != nil {
			return nil, fmt.Errorf("leaderboard: scan row: %w", err)
		}
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leaderboard: rows: %w", err)
	}
	return entries, nil
}

// HighScore returns the best score for slug, or 0 when there is none.
func (s *Store) HighScore(slug string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_slug = ?", slug).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("leaderboard: high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}
