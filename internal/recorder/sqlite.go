package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists demo activity to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id         TEXT PRIMARY KEY,
			started_at INTEGER NOT NULL,
			theme      TEXT,
			scenario   TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS tier_changes (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			session_id TEXT NOT NULL,
			tier_index INTEGER,
			tier_name  TEXT,
			ratio      REAL,
			playing    INTEGER,
			source     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tier_session ON tier_changes(session_id, timestamp)`,

		`CREATE TABLE IF NOT EXISTS playback_steps (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			session_id  TEXT NOT NULL,
			scenario_id TEXT,
			step        INTEGER,
			playing     INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_playback_session ON playback_steps(session_id, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSession(s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO sessions (id, started_at, theme, scenario) VALUES (?,?,?,?)`,
		s.ID, s.StartedAt.Unix(), s.Theme, s.Scenario,
	)
	return err
}

func (r *SQLiteRecorder) RecordTierChange(evt *TierChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO tier_changes
		(timestamp, session_id, tier_index, tier_name, ratio, playing, source)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.SessionID, evt.TierIndex, evt.TierName,
		evt.Ratio, evt.Playing, evt.Source,
	)
	return err
}

func (r *SQLiteRecorder) RecordPlaybackStep(evt *PlaybackStep) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO playback_steps
		(timestamp, session_id, scenario_id, step, playing)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.SessionID, evt.ScenarioID, evt.Step, evt.Playing,
	)
	return err
}

// CountTierChanges returns how many tier changes a session recorded.
func (r *SQLiteRecorder) CountTierChanges(sessionID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM tier_changes WHERE session_id = ?`, sessionID).Scan(&n)
	return n, err
}

// CountPlaybackSteps returns how many playback steps a session recorded.
func (r *SQLiteRecorder) CountPlaybackSteps(sessionID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM playback_steps WHERE session_id = ?`, sessionID).Scan(&n)
	return n, err
}

func (r *SQLiteRecorder) Name() string { return "sqlite" }

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
