// Package cubie models a 3x3 Rubik's cube at the cubie level: which corner
// and edge piece sits in each slot, and how each one is rotated.
//
// # Features
//
//   - Table-driven face turns on a fixed-size State
//   - Standard move notation: parse, format, invert
//   - Random "human-style" scrambles with no repeated face or axis
//   - Sticker (facelet) view and facelet-string round trip
//   - Layer-by-layer phase detection
//   - Move simplification (merging and cancelling same-face turns)
//   - A Tracker with scramble, undo and redo history
//
// # Quick Start
//
//	s := cubie.SolvedState()
//
//	// Apply moves using predefined constants
//	s.Apply(cubie.R, cubie.U, cubie.RPrime, cubie.UPrime)
//
//	// Or from notation
//	moves, err := cubie.ParseMoves("F B2 L' D")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cubie.ApplyMoves(&s, moves)
//
//	fmt.Println("Solved:", s.IsSolved())
//	f := s.Facelets()
//	fmt.Print(f.String())
//
// # State
//
// State holds four arrays: CP and CO for the 8 corner slots, EP and EO for
// the 12 edge slots. Slots and pieces share names (URF, UFL, ... for
// corners; UR, UF, ... for edges). A State is a value; copying it copies
// the cube.
//
// # Moves
//
// A Move is a Face and a Turn. Turn counts clockwise quarter turns as seen
// from outside that face: CW (1), Double (2) or CCW (3, the "prime" move).
// Moves built with ParseMove, NewMove, the predefined variables or a
// Scrambler are always valid; ApplyMove panics on anything else.
//
// # Undo and Redo
//
// The Tracker layers history on top of ApplyMove and Move.Inverse:
//
//	t := cubie.NewTracker()
//	t.Scramble()
//	t.ApplyMove(cubie.R)
//	t.Undo()
//	t.Redo()
package cubie
