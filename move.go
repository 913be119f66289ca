package cubie

import (
	"fmt"
	"strings"
)

// Face identifies one of the six faces of the cube.
// The order matches the rows of the move tables.
type Face uint8

const (
	FaceU Face = iota // Up
	FaceR             // Right
	FaceF             // Front
	FaceD             // Down
	FaceL             // Left
	FaceB             // Back
)

// Faces lists every face in table order.
var Faces = [6]Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

const faceLetters = "URFDLB"

func (f Face) String() string {
	if !f.Valid() {
		return "?"
	}
	return faceLetters[f : f+1]
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f <= FaceB
}

// Axis is the line shared by a pair of opposite faces.
type Axis uint8

const (
	AxisUD Axis = iota // Up / Down
	AxisRL             // Right / Left
	AxisFB             // Front / Back
)

func (a Axis) String() string {
	switch a {
	case AxisUD:
		return "UD"
	case AxisRL:
		return "RL"
	case AxisFB:
		return "FB"
	default:
		return "?"
	}
}

// Axis returns the axis the face turns around.
// Opposite faces are three apart in table order.
func (f Face) Axis() Axis {
	return Axis(f % 3)
}

// Opposite returns the face across the cube from f.
func (f Face) Opposite() Face {
	return (f + 3) % 6
}

// Turn is the number of clockwise quarter turns a move makes.
type Turn uint8

const (
	CW     Turn = 1 // Clockwise (90 degrees)
	Double Turn = 2 // Half turn (180 degrees)
	CCW    Turn = 3 // Counter-clockwise (90 degrees), the "prime" turn
)

// Valid reports whether t is one of CW, Double or CCW.
func (t Turn) Valid() bool {
	return t >= CW && t <= CCW
}

// Move represents a single face turn.
// Moves are comparable values; two moves are equal when face and turn match.
type Move struct {
	Face Face // Which face to turn
	Turn Turn // Quarter turns, clockwise as seen from outside the face
}

// NewMove builds a move, rejecting a face or turn outside their domains.
func NewMove(face Face, turn Turn) (Move, error) {
	m := Move{Face: face, Turn: turn}
	if !m.Valid() {
		return Move{}, fmt.Errorf("%w: face=%d turn=%d", ErrInvalidMove, face, turn)
	}
	return m, nil
}

// Valid reports whether both the face and the turn are in range.
func (m Move) Valid() bool {
	return m.Face.Valid() && m.Turn.Valid()
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
// An invalid move, including the zero Move, renders as "?".
func (m Move) Notation() string {
	if !m.Valid() {
		return "?"
	}
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return m.Face.String() + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation token into a Move.
// Examples: R, R', R2, u, f2
// The face letter is case-insensitive. The only accepted suffixes are
// none, "2" and "'". Anything else returns ErrInvalidNotation.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	// Extract face
	var face Face
	switch s[0] {
	case 'U', 'u':
		face = FaceU
	case 'R', 'r':
		face = FaceR
	case 'F', 'f':
		face = FaceF
	case 'D', 'd':
		face = FaceD
	case 'L', 'l':
		face = FaceL
	case 'B', 'b':
		face = FaceB
	default:
		return Move{}, ErrInvalidNotation
	}

	// Extract turn
	var turn Turn
	switch s[1:] {
	case "":
		turn = CW
	case "2":
		turn = Double
	case "'":
		turn = CCW
	default:
		return Move{}, ErrInvalidNotation
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// Parsing stops at the first invalid token; the error names the token and
// its position and wraps ErrInvalidNotation.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("token %d %q: %w", i+1, part, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves: the inverses in
// reverse order.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
