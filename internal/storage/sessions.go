package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeLayout is fixed width so timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Session is one recorded engine run.
type Session struct {
	SessionID  string
	Kind       string
	Seed       *uint64
	StartedAt  time.Time
	EndedAt    *time.Time
	DurationMs *int64
	Solved     bool
	MoveCount  int
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create starts a session and returns its ID. A zero seed is stored as
// NULL, meaning the scramble was not reproducible.
func (r *SessionRepository) Create(kind string, seed uint64) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var seedArg any
	if seed != 0 {
		seedArg = int64(seed)
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, kind, seed, started_at)
		VALUES (?, ?, ?, ?)
	`, id, kind, seedArg, startedAt.Format(timeLayout))
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// End marks a session complete and records whether the cube finished
// solved.
func (r *SessionRepository) End(sessionID string, solved bool) error {
	endedAt := time.Now().UTC()

	var startedAtStr string
	err := r.db.QueryRow("SELECT started_at FROM sessions WHERE session_id = ?", sessionID).Scan(&startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to get session start time: %w", err)
	}
	startedAt, err := time.Parse(timeLayout, startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to parse start time: %w", err)
	}

	_, err = r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, duration_ms = ?, solved = ?
		WHERE session_id = ?
	`, endedAt.Format(timeLayout), endedAt.Sub(startedAt).Milliseconds(), solved, sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

const sessionColumns = `
	s.session_id, s.kind, s.seed, s.started_at, s.ended_at, s.duration_ms, s.solved,
	(SELECT COUNT(*) FROM moves m WHERE m.session_id = s.session_id)`

// Get retrieves a session by ID. It returns nil if no session matches.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions s WHERE s.session_id = ?`, sessionID)
	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// List returns the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`SELECT `+sessionColumns+`
		FROM sessions s
		ORDER BY s.started_at DESC, s.rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var s Session
	var seed sql.NullInt64
	var startedAtStr string
	var endedAtStr sql.NullString

	err := row.Scan(&s.SessionID, &s.Kind, &seed, &startedAtStr, &endedAtStr,
		&s.DurationMs, &s.Solved, &s.MoveCount)
	if err != nil {
		return nil, err
	}

	if seed.Valid {
		v := uint64(seed.Int64)
		s.Seed = &v
	}
	s.StartedAt, _ = time.Parse(timeLayout, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(timeLayout, endedAtStr.String)
		s.EndedAt = &t
	}
	return &s, nil
}
