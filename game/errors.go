package game

import "errors"

// Expected, recoverable outcomes. Callers are free to attempt illegal
// moves (a UI will) and to undo past the start; both report normally
// via errors.Is rather than failing hard.
var (
	// ErrIllegalMove marks a submitted move that is not in the current
	// legal move set. Game state is left unchanged.
	ErrIllegalMove = errors.New("game: illegal move")

	// ErrNoHistory marks an undo with no moves to undo.
	ErrNoHistory = errors.New("game: no moves to undo")
)
