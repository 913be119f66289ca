package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/cubie"
)

// MoveKind says how a recorded turn came about.
type MoveKind string

const (
	KindTurn MoveKind = "turn"
	KindUndo MoveKind = "undo"
	KindRedo MoveKind = "redo"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	TsMs      int64
	Face      string
	Turn      int
	Notation  string
	Kind      MoveKind
}

// Move parses the stored notation back into an engine move.
func (m MoveRecord) Move() (cubie.Move, error) {
	mv, err := cubie.ParseMove(m.Notation)
	if err != nil {
		return cubie.Move{}, fmt.Errorf("move %d: %w", m.MoveIndex, err)
	}
	return mv, nil
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

const insertMove = `
	INSERT INTO moves (session_id, move_index, ts_ms, face, turn, notation, kind)
	VALUES (?, ?, ?, ?, ?, ?, ?)
`

// Create creates a new move and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, tsMs int64, move cubie.Move, kind MoveKind) (int64, error) {
	result, err := r.db.Exec(insertMove,
		sessionID, moveIndex, tsMs, move.Face.String(), int(move.Turn), move.Notation(), string(kind))
	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch creates multiple turns in a single transaction, all stamped tsMs.
func (r *MoveRepository) CreateBatch(sessionID string, moves []cubie.Move, startIndex int, tsMs int64) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, move := range moves {
			_, err := tx.Exec(insertMove,
				sessionID, startIndex+i, tsMs, move.Face.String(), int(move.Turn), move.Notation(), string(KindTurn))
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, ts_ms, face, turn, notation, kind
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &m.Face, &m.Turn, &m.Notation, &m.Kind)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// GetNextIndex returns the next move index for a session.
func (r *MoveRepository) GetNextIndex(sessionID string) (int, error) {
	var maxIndex int
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(move_index), -1) FROM moves WHERE session_id = ?
	`, sessionID).Scan(&maxIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to get max move index: %w", err)
	}
	return maxIndex + 1, nil
}

// ToMoves converts records to engine moves, in order.
func ToMoves(records []MoveRecord) ([]cubie.Move, error) {
	moves := make([]cubie.Move, len(records))
	for i, r := range records {
		m, err := r.Move()
		if err != nil {
			return nil, err
		}
		moves[i] = m
	}
	return moves, nil
}
