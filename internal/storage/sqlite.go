// Package storage provides SQLite-based persistence for finished matches.
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

	"github.com/vovakirdan/seabattle/internal/match"
)

// DefaultPath is where the CLI keeps match history.
const DefaultPath = "~/.seabattle/seabattle.db"

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished match as stored.
type MatchRecord struct {
	ID          int64
	MatchID     string
	Mode        string
	Winner      string
	Loser       string
	Turns       int
	WinnerShots int
	LoserShots  int
	WinnerHits  int
	LoserHits   int
	BoardSize   int
	Duration    int // Duration in seconds
	CreatedAt   time.Time
}

// Accuracy returns the winner's hit ratio in [0, 1].
func (r MatchRecord) Accuracy() float64 {
	if r.WinnerShots == 0 {
		return 0
	}
	return float64(r.WinnerHits) / float64(r.WinnerShots)
}

// Standing aggregates wins and losses for one player name.
type Standing struct {
	Name       string
	Wins       int
	Losses     int
	LastPlayed time.Time
}

// Games returns how many matches the player finished.
func (s Standing) Games() int {
	return s.Wins + s.Losses
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			winner TEXT NOT NULL,
			loser TEXT NOT NULL,
			turns INTEGER NOT NULL DEFAULT 0,
			winner_shots INTEGER NOT NULL DEFAULT 0,
			loser_shots INTEGER NOT NULL DEFAULT 0,
			winner_hits INTEGER NOT NULL DEFAULT 0,
			loser_hits INTEGER NOT NULL DEFAULT 0,
			board_size INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner);
		CREATE INDEX IF NOT EXISTS idx_matches_loser ON matches(loser);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
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

// SaveMatch records a finished match. A zero CreatedAt uses the current time.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(r MatchRecord) (int64, error) {
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, mode, winner, loser, turns, winner_shots, loser_shots, winner_hits, loser_hits, board_size, duration_secs, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID,
		r.Mode,
		r.Winner,
		r.Loser,
		r.Turns,
		r.WinnerShots,
		r.LoserShots,
		r.WinnerHits,
		r.LoserHits,
		r.BoardSize,
		r.Duration,
		createdAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveResult implements match.ResultSaver.
func (s *Store) SaveResult(r match.Result) error {
	_, err := s.SaveMatch(RecordFromResult(r))
	return err
}

// Ensure Store implements ResultSaver
var _ match.ResultSaver = (*Store)(nil)

// RecordFromResult flattens a match result into winner/loser columns.
func RecordFromResult(r match.Result) MatchRecord {
	w, l := r.Winner, r.Winner.Other()
	return MatchRecord{
		MatchID:     r.MatchID,
		Mode:        string(r.Mode),
		Winner:      r.WinnerName,
		Loser:       r.LoserName,
		Turns:       r.Turns,
		WinnerShots: r.Shots[w],
		LoserShots:  r.Shots[l],
		WinnerHits:  r.Hits[w],
		LoserHits:   r.Hits[l],
		BoardSize:   r.BoardSize,
		Duration:    int(r.Duration.Round(time.Second) / time.Second),
		CreatedAt:   r.Started,
	}
}

const matchColumns = `id, match_id, mode, winner, loser, turns, winner_shots, loser_shots,
		winner_hits, loser_hits, board_size, duration_secs, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (MatchRecord, error) {
	var r MatchRecord
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.MatchID,
		&r.Mode,
		&r.Winner,
		&r.Loser,
		&r.Turns,
		&r.WinnerShots,
		&r.LoserShots,
		&r.WinnerHits,
		&r.LoserHits,
		&r.BoardSize,
		&r.Duration,
		&createdAt,
	)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// MatchByID retrieves a match by its match ID. Returns nil if it is unknown.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE match_id = ?`,
		matchID,
	)
	r, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &r, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryMatches(
		`SELECT `+matchColumns+`
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// PlayerMatches retrieves matches a player won or lost, newest first.
func (s *Store) PlayerMatches(name string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryMatches(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE winner = ? OR loser = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		name, name, limit,
	)
}

func (s *Store) queryMatches(query string, args ...any) ([]MatchRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		r, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Standings returns wins and losses per player, most wins first.
func (s *Store) Standings() ([]Standing, error) {
	rows, err := s.db.Query(
		`SELECT name, SUM(win), SUM(loss), MAX(created_at)
		 FROM (
			SELECT winner AS name, 1 AS win, 0 AS loss, created_at FROM matches
			UNION ALL
			SELECT loser AS name, 0 AS win, 1 AS loss, created_at FROM matches
		 )
		 GROUP BY name
		 ORDER BY SUM(win) DESC, SUM(loss) ASC, name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query standings: %w", err)
	}
	defer rows.Close()

	var standings []Standing
	for rows.Next() {
		var st Standing
		var lastPlayed any
		if err := rows.Scan(&st.Name, &st.Wins, &st.Losses, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan standings row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		standings = append(standings, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return standings, nil
}

// ClearMatches deletes all stored matches.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
