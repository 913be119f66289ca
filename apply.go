package cubie

import "fmt"

// ApplyMove turns one face of s in place.
//
// A move of Turn k applies the face's clockwise base turn k times. Every
// base turn reads from a snapshot of the state before it, so no slot is
// read after being overwritten.
//
// A move with a face or turn out of range is a caller bug and panics with
// ErrInvalidMove. Moves from ParseMove, NewMove, the predefined variables
// and the Scrambler are always valid.
func ApplyMove(s *State, m Move) {
	if !m.Valid() {
		panic(fmt.Errorf("%w: face=%d turn=%d", ErrInvalidMove, m.Face, m.Turn))
	}
	for i := Turn(0); i < m.Turn; i++ {
		s.turnCW(m.Face)
	}
}

// ApplyMoves applies a sequence of moves to s in order.
func ApplyMoves(s *State, moves []Move) {
	for _, m := range moves {
		ApplyMove(s, m)
	}
}

// Apply applies moves to the state in order.
func (s *State) Apply(moves ...Move) {
	ApplyMoves(s, moves)
}

// turnCW applies one clockwise quarter turn of face.
func (s *State) turnCW(face Face) {
	old := *s

	cs := &cornerSrc[face]
	ct := &cornerTwist[face]
	for i := 0; i < NumCorners; i++ {
		src := cs[i]
		s.CP[i] = old.CP[src]
		s.CO[i] = (old.CO[src] + ct[i]) % 3
	}

	es := &edgeSrc[face]
	ef := &edgeFlip[face]
	for i := 0; i < NumEdges; i++ {
		src := es[i]
		s.EP[i] = old.EP[src]
		s.EO[i] = (old.EO[src] + ef[i]) & 1
	}
}
