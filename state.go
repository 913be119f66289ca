package cubie

import (
	"fmt"
	"strings"
)

// State is the cubie-level state of a 3x3 cube.
//
// Slots are fixed positions in space; pieces are the physical corners and
// edges. CP[i] is the corner piece in corner slot i and CO[i] its twist
// (0..2); EP[i] is the edge piece in edge slot i and EO[i] its flip (0..1).
// See Corner and Edge for the slot and piece numbering.
//
// States reached by face turns always have CP and EP as permutations, a
// total twist divisible by 3, a total flip divisible by 2, and equal corner
// and edge permutation parity. The Turn engine keeps these; it never checks
// them.
//
// State is a plain value: assigning or returning it copies all four arrays.
type State struct {
	CP [NumCorners]uint8
	CO [NumCorners]uint8
	EP [NumEdges]uint8
	EO [NumEdges]uint8
}

// SolvedState returns the solved cube: every piece home and unrotated.
func SolvedState() State {
	var s State
	for i := range s.CP {
		s.CP[i] = uint8(i)
	}
	for i := range s.EP {
		s.EP[i] = uint8(i)
	}
	return s
}

// Clone returns a deep copy of the state.
func (s *State) Clone() State {
	return *s
}

// IsSolved returns true if every piece is in its home slot with zero
// orientation.
func (s *State) IsSolved() bool {
	for i := 0; i < NumCorners; i++ {
		if s.CP[i] != uint8(i) || s.CO[i] != 0 {
			return false
		}
	}
	for i := 0; i < NumEdges; i++ {
		if s.EP[i] != uint8(i) || s.EO[i] != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether both states hold the same pieces with the same
// orientations in every slot.
func (s *State) Equal(o *State) bool {
	return *s == *o
}

// Validate checks the structural shape of the state: CP and EP are
// permutations and every orientation is in range. It does not check that
// the state is reachable from solved.
func (s *State) Validate() error {
	var seenC [NumCorners]bool
	for i, p := range s.CP {
		if int(p) >= NumCorners || seenC[p] {
			return fmt.Errorf("%w: corner slot %s holds piece %d", ErrInvalidState, Corner(i), p)
		}
		seenC[p] = true
		if s.CO[i] > 2 {
			return fmt.Errorf("%w: corner slot %s twist %d", ErrInvalidState, Corner(i), s.CO[i])
		}
	}

	var seenE [NumEdges]bool
	for i, p := range s.EP {
		if int(p) >= NumEdges || seenE[p] {
			return fmt.Errorf("%w: edge slot %s holds piece %d", ErrInvalidState, Edge(i), p)
		}
		seenE[p] = true
		if s.EO[i] > 1 {
			return fmt.Errorf("%w: edge slot %s flip %d", ErrInvalidState, Edge(i), s.EO[i])
		}
	}

	return nil
}

// Twist returns the total corner orientation mod 3.
func (s *State) Twist() int {
	sum := 0
	for _, o := range s.CO {
		sum += int(o)
	}
	return sum % 3
}

// Flip returns the total edge orientation mod 2.
func (s *State) Flip() int {
	sum := 0
	for _, o := range s.EO {
		sum += int(o)
	}
	return sum % 2
}

// Parity returns the permutation parity (0 even, 1 odd) of the corners and
// of the edges.
func (s *State) Parity() (corners, edges int) {
	return permParity(s.CP[:]), permParity(s.EP[:])
}

// permParity counts inversions; fine for 12 elements.
func permParity(p []uint8) int {
	n := 0
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				n++
			}
		}
	}
	return n % 2
}

// String returns the four arrays in a compact form, naming the piece in
// each slot.
func (s *State) String() string {
	var b strings.Builder

	b.WriteString("corners:")
	for i := 0; i < NumCorners; i++ {
		fmt.Fprintf(&b, " %s=%s", Corner(i), Corner(s.CP[i]))
		if s.CO[i] != 0 {
			fmt.Fprintf(&b, "+%d", s.CO[i])
		}
	}

	b.WriteString("\nedges:  ")
	for i := 0; i < NumEdges; i++ {
		fmt.Fprintf(&b, " %s=%s", Edge(i), Edge(s.EP[i]))
		if s.EO[i] != 0 {
			b.WriteString("+1")
		}
	}

	return b.String()
}
