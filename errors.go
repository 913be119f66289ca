package cubie

import "errors"

// Sentinel errors for the cubie package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubie: invalid move notation")

	// Move errors
	ErrInvalidMove = errors.New("cubie: invalid move")

	// State errors
	ErrInvalidState = errors.New("cubie: invalid cube state")

	// History errors
	ErrNothingToUndo = errors.New("cubie: nothing to undo")
	ErrNothingToRedo = errors.New("cubie: nothing to redo")
)
