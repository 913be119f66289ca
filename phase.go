package cubie

// Phase represents progress through the layer-by-layer method, with white
// (U) solved first and yellow (D) last. Phases progress from Scrambled (0)
// to Solved (7), allowing comparison with < and > operators.
type Phase int

const (
	// PhaseScrambled indicates no phase is complete.
	PhaseScrambled Phase = iota

	// PhaseWhiteCross indicates the four U edges are home and unflipped.
	PhaseWhiteCross

	// PhaseFirstLayer indicates the four U corners are also home and untwisted.
	PhaseFirstLayer

	// PhaseSecondLayer indicates the four middle-layer edges are also home
	// and unflipped.
	PhaseSecondLayer

	// PhaseYellowCross indicates the D slots hold D edges showing yellow on
	// the D face, in any order.
	PhaseYellowCross

	// PhaseYellowCorners indicates the four D corners are home (may be twisted).
	PhaseYellowCorners

	// PhaseYellowOriented indicates the four D corners are also untwisted.
	PhaseYellowOriented

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseWhiteCross:
		return "white_cross"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseSecondLayer:
		return "second_layer"
	case PhaseYellowCross:
		return "yellow_cross"
	case PhaseYellowCorners:
		return "yellow_corners"
	case PhaseYellowOriented:
		return "yellow_oriented"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseWhiteCross:
		return "White Cross"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseSecondLayer:
		return "Second Layer (F2L)"
	case PhaseYellowCross:
		return "Yellow Cross"
	case PhaseYellowCorners:
		return "Yellow Corners Positioned"
	case PhaseYellowOriented:
		return "Yellow Corners Oriented"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// Progress represents which phases are complete.
type Progress struct {
	WhiteCross     bool
	FirstLayer     bool
	SecondLayer    bool
	YellowCross    bool
	YellowCorners  bool
	YellowOriented bool
	Solved         bool
}

// edgesHome reports whether every listed edge slot holds its own piece,
// unflipped.
func (s *State) edgesHome(slots ...Edge) bool {
	for _, e := range slots {
		if s.EP[e] != uint8(e) || s.EO[e] != 0 {
			return false
		}
	}
	return true
}

// cornersHome reports whether every listed corner slot holds its own piece;
// with twisted false the piece must also be untwisted.
func (s *State) cornersHome(twisted bool, slots ...Corner) bool {
	for _, c := range slots {
		if s.CP[c] != uint8(c) {
			return false
		}
		if !twisted && s.CO[c] != 0 {
			return false
		}
	}
	return true
}

// IsWhiteCrossComplete checks the U edges.
func (s *State) IsWhiteCrossComplete() bool {
	return s.edgesHome(UR, UF, UL, UB)
}

// IsFirstLayerComplete checks the white cross and the U corners.
func (s *State) IsFirstLayerComplete() bool {
	return s.IsWhiteCrossComplete() && s.cornersHome(false, URF, UFL, ULB, UBR)
}

// IsSecondLayerComplete checks the first layer and the middle-layer edges.
func (s *State) IsSecondLayerComplete() bool {
	return s.IsFirstLayerComplete() && s.edgesHome(FR, FL, BL, BR)
}

// IsYellowCrossComplete checks that yellow shows on all four D edge
// stickers. The D edges need not be in their own slots yet.
func (s *State) IsYellowCrossComplete() bool {
	if !s.IsSecondLayerComplete() {
		return false
	}
	for _, e := range []Edge{DR, DF, DL, DB} {
		p := Edge(s.EP[e])
		if p < DR || p > DB || s.EO[e] != 0 {
			return false
		}
	}
	return true
}

// AreYellowCornersPositioned checks that the D corners are home; they may
// still be twisted.
func (s *State) AreYellowCornersPositioned() bool {
	return s.IsYellowCrossComplete() && s.cornersHome(true, DFR, DLF, DBL, DRB)
}

// AreYellowCornersOriented checks that the D corners are home and untwisted.
func (s *State) AreYellowCornersOriented() bool {
	return s.AreYellowCornersPositioned() && s.cornersHome(false, DFR, DLF, DBL, DRB)
}

// Phase returns the furthest phase the state has completed.
func (s *State) Phase() Phase {
	if s.IsSolved() {
		return PhaseSolved
	}
	if s.AreYellowCornersOriented() {
		return PhaseYellowOriented // D edges may still need cycling
	}
	if s.AreYellowCornersPositioned() {
		return PhaseYellowCorners
	}
	if s.IsYellowCrossComplete() {
		return PhaseYellowCross
	}
	if s.IsSecondLayerComplete() {
		return PhaseSecondLayer
	}
	if s.IsFirstLayerComplete() {
		return PhaseFirstLayer
	}
	if s.IsWhiteCrossComplete() {
		return PhaseWhiteCross
	}
	return PhaseScrambled
}

// Progress returns the completion of every phase.
func (s *State) Progress() Progress {
	return Progress{
		WhiteCross:     s.IsWhiteCrossComplete(),
		FirstLayer:     s.IsFirstLayerComplete(),
		SecondLayer:    s.IsSecondLayerComplete(),
		YellowCross:    s.IsYellowCrossComplete(),
		YellowCorners:  s.AreYellowCornersPositioned(),
		YellowOriented: s.AreYellowCornersOriented(),
		Solved:         s.IsSolved(),
	}
}
