package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/cubesim"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	Phase     string
	Notation  string
	Move      cubesim.Move
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// CreateBatch stores moves in a single transaction, numbering them from
// startIndex. phase labels where the moves came from, e.g. "scramble".
func (r *MoveRepository) CreateBatch(sessionID, phase string, moves []cubesim.Move, startIndex int) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, m := range moves {
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, move_index, phase, axis, layer, direction, notation)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, sessionID, startIndex+i, phase, m.Axis.String(), m.Layer, int(m.Dir), m.Notation())
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves of a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, phase, axis, layer, direction, notation
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var records []MoveRecord
	for rows.Next() {
		var rec MoveRecord
		var axis string
		var dir int
		err := rows.Scan(&rec.MoveID, &rec.SessionID, &rec.MoveIndex, &rec.Phase,
			&axis, &rec.Move.Layer, &dir, &rec.Notation)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		rec.Move.Axis, err = cubesim.ParseAxis(axis)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", rec.MoveIndex, err)
		}
		rec.Move.Dir = cubesim.Direction(dir)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Moves extracts the moves from records.
func Moves(records []MoveRecord) []cubesim.Move {
	out := make([]cubesim.Move, len(records))
	for i, rec := range records {
		out[i] = rec.Move
	}
	return out
}
