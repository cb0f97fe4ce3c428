package game

import "github.com/palemoky/klondike/internal/apperrors"

// moveState tracks the single-use lifecycle of a move instance.
type moveState int

const (
	moveCreated moveState = iota
	moveApplied
	moveReverted
)

// Move is a single player action that mutates the game state and can be
// undone. An instance is single use: it runs Created, Applied and optionally
// Reverted, in that order, and any call out of order is a defect.
//
// The unexported method keeps the move set closed to this package, so every
// variant the engine can see is known at compile time.
type Move interface {
	// Apply validates the move against the state, executes it and appends it
	// to the history. The returned text describes the outcome for display.
	// The state is untouched when an error is returned.
	Apply(s *State) (string, error)

	// Revert undoes the move and removes it from the history. Only the most
	// recently applied move may be reverted.
	Revert(s *State)

	// Name is the short display name of the move.
	Name() string

	isMove()
}

// popHistory removes m from the history. Reverting any move other than the
// most recent one breaks the undo chain, so that is a defect.
func popHistory(s *State, m Move) {
	if len(s.Moves) == 0 || s.Moves[len(s.Moves)-1] != m {
		apperrors.Contract("revert of a move that is not the most recent one")
	}
	s.Moves = s.Moves[:len(s.Moves)-1]
}
