package cubie

// Tracker owns a State and the bookkeeping around it: the scramble that
// set it up, the moves the user made since, and undo/redo stacks.
//
// A Tracker is not safe for concurrent use; its owner applies one move at
// a time.
type Tracker struct {
	cfg   *config
	state State

	scramble []Move
	moves    []Move
	undo     []Move
	redo     []Move

	highestPhase Phase // Monotonic since the last scramble or reset

	moveCallback   func(m Move)
	phaseCallback  func(p Phase)
	solvedCallback func()
}

// NewTracker creates a new tracker starting from a solved state.
func NewTracker(opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.scrambler == nil {
		cfg.scrambler = NewScrambler()
	}

	t := &Tracker{cfg: cfg}
	t.Reset()
	return t
}

// OnMove sets a callback that fires after every turn applied to the
// state, including undo, redo and scramble turns.
func (t *Tracker) OnMove(cb func(m Move)) {
	t.moveCallback = cb
}

// OnPhaseChange sets a callback that fires when a new highest phase is
// reached.
func (t *Tracker) OnPhaseChange(cb func(p Phase)) {
	t.phaseCallback = cb
}

// OnSolved sets a callback that fires when a user move solves the cube.
func (t *Tracker) OnSolved(cb func()) {
	t.solvedCallback = cb
}

// Reset returns to a solved cube and clears the scramble, moves and history.
func (t *Tracker) Reset() {
	t.state = SolvedState()
	t.scramble = nil
	t.moves = nil
	t.undo = nil
	t.redo = nil
	t.highestPhase = t.state.Phase()
}

// Scramble resets the tracker and applies a freshly generated scramble.
// The scramble is not recorded as user moves and cannot be undone.
func (t *Tracker) Scramble() []Move {
	moves := t.cfg.scrambler.Scramble(t.cfg.scrambleLength)
	t.ApplyScramble(moves)
	return t.ScrambleMoves()
}

// ApplyScramble resets the tracker and applies moves as its scramble.
func (t *Tracker) ApplyScramble(moves []Move) {
	t.Reset()
	t.scramble = append([]Move(nil), moves...)
	for _, m := range moves {
		t.turn(m)
	}
	t.highestPhase = t.state.Phase()
}

// ApplyMove applies a user move, records it and clears the redo stack.
func (t *Tracker) ApplyMove(m Move) {
	t.turn(m)
	t.moves = append(t.moves, m)
	if t.cfg.moveHistory {
		t.undo = append(t.undo, m)
		t.redo = t.redo[:0]
	}
	t.afterUserMove()
}

// ApplyMoves applies multiple user moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// Undo reverts the last user move by applying its inverse.
// It returns the move that was undone.
func (t *Tracker) Undo() (Move, error) {
	if len(t.undo) == 0 {
		return Move{}, ErrNothingToUndo
	}

	last := t.undo[len(t.undo)-1]
	t.undo = t.undo[:len(t.undo)-1]
	t.redo = append(t.redo, last)
	if len(t.moves) > 0 {
		t.moves = t.moves[:len(t.moves)-1]
	}

	t.turn(last.Inverse())
	t.afterUserMove()
	return last, nil
}

// Redo re-applies the most recently undone move.
// It returns the move that was redone.
func (t *Tracker) Redo() (Move, error) {
	if len(t.redo) == 0 {
		return Move{}, ErrNothingToRedo
	}

	m := t.redo[len(t.redo)-1]
	t.redo = t.redo[:len(t.redo)-1]
	t.undo = append(t.undo, m)
	t.moves = append(t.moves, m)

	t.turn(m)
	t.afterUserMove()
	return m, nil
}

// turn applies m to the state and notifies the move callback.
func (t *Tracker) turn(m Move) {
	ApplyMove(&t.state, m)
	if t.moveCallback != nil {
		t.moveCallback(m)
	}
}

// afterUserMove checks for phase progress and a solve.
func (t *Tracker) afterUserMove() {
	if t.cfg.phaseDetection {
		// Only a NEW high fires the callback; falling back a phase while
		// solving does not lower the mark.
		if current := t.state.Phase(); current > t.highestPhase {
			t.highestPhase = current
			if t.phaseCallback != nil {
				t.phaseCallback(current)
			}
		}
	}

	if t.SolvedByUser() && t.solvedCallback != nil {
		t.solvedCallback()
	}
}

// State returns a copy of the current state.
func (t *Tracker) State() State {
	return t.state.Clone()
}

// ScrambleMoves returns the moves of the current scramble.
func (t *Tracker) ScrambleMoves() []Move {
	return append([]Move(nil), t.scramble...)
}

// Moves returns the user moves made since the last scramble or reset,
// excluding undone moves.
func (t *Tracker) Moves() []Move {
	return append([]Move(nil), t.moves...)
}

// CanUndo reports whether Undo has a move to revert.
func (t *Tracker) CanUndo() bool {
	return len(t.undo) > 0
}

// CanRedo reports whether Redo has a move to re-apply.
func (t *Tracker) CanRedo() bool {
	return len(t.redo) > 0
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.state.IsSolved()
}

// SolvedByUser returns true if the cube is solved and the user has made at
// least one move, i.e. the user solved it rather than never touching it.
func (t *Tracker) SolvedByUser() bool {
	return len(t.moves) > 0 && t.state.IsSolved()
}

// Phase returns the current detected phase.
// This reflects the raw cube state and may go backwards during solving.
func (t *Tracker) Phase() Phase {
	return t.state.Phase()
}

// HighestPhase returns the highest phase reached since the last scramble.
// This is monotonic and never goes backwards.
func (t *Tracker) HighestPhase() Phase {
	return t.highestPhase
}

// Facelets returns the sticker view of the current state.
func (t *Tracker) Facelets() Facelets {
	return t.state.Facelets()
}
