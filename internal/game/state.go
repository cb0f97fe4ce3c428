// Package game implements the solitaire engine: the board state, the two
// move commands that mutate it, and the lifecycle around dealing, scoring
// and win detection.
package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/palemoky/klondike/internal/apperrors"
	"github.com/palemoky/klondike/internal/game/card"
)

// ColumnNames lists the seven column headers in board order.
var ColumnNames = []string{"A", "B", "C", "D", "E", "F", "G"}

// StackNames lists the four stack pile headers in board order.
var StackNames = []string{"SA", "SB", "SC", "SD"}

// State is the aggregate of one game in progress: every deck on the board,
// the move history and the score components. After the deal it is mutated
// only through Move apply and revert and the lifecycle functions, one move
// at a time. The 52 dealt cards are conserved across all decks for the life
// of the game.
type State struct {
	ID      string
	Columns map[string]*card.Deck
	Stacks  map[string]*card.Deck
	Stock   *card.Deck
	Waste   *card.Deck

	// Moves holds the applied moves in execution order. Only the last entry
	// may be reverted.
	Moves []Move

	BaseScore   int64
	TimeScore   int64
	StartTime   time.Time
	EndTime     time.Time // zero while the game is running
	StockCycles int
	Won         bool
}

// newState builds an empty board with all decks in place.
func newState() *State {
	s := &State{
		ID:        uuid.New().String(),
		Columns:   make(map[string]*card.Deck, len(ColumnNames)),
		Stacks:    make(map[string]*card.Deck, len(StackNames)),
		Stock:     &card.Deck{Kind: card.KindStock},
		Waste:     &card.Deck{Kind: card.KindWaste},
		StartTime: time.Now(),
	}
	for _, name := range ColumnNames {
		s.Columns[name] = &card.Deck{Kind: card.KindColumn}
	}
	for _, name := range StackNames {
		s.Stacks[name] = &card.Deck{Kind: card.KindStack}
	}
	return s
}

// Score returns the combined score shown to the player.
func (s *State) Score() int64 {
	return s.BaseScore + s.TimeScore
}

// Elapsed returns the play time: the span from the start of the game to its
// end, or to now while the game is still running.
func (s *State) Elapsed() time.Duration {
	end := s.EndTime
	if end.IsZero() {
		end = time.Now()
	}
	return end.Sub(s.StartTime)
}

// MoveCount returns the number of moves played so far.
func (s *State) MoveCount() int {
	return len(s.Moves)
}

// Undo reverts the most recently applied move and returns its display name.
func (s *State) Undo() (string, error) {
	if len(s.Moves) == 0 {
		return "", apperrors.Illegal("Nothing to undo")
	}
	last := s.Moves[len(s.Moves)-1]
	last.Revert(s)
	return last.Name(), nil
}
