package game

import (
	"time"

	"github.com/palemoky/klondike/internal/game/card"
)

// ColumnView is one column prepared for rendering: the face-down cards are
// reduced to a count so their identity never leaks to the display layer.
type ColumnView struct {
	Name     string
	FaceDown int
	FaceUp   []card.Card
}

// Size returns the total number of cards in the column.
func (v ColumnView) Size() int {
	return v.FaceDown + len(v.FaceUp)
}

// StackView is one stack pile prepared for rendering.
type StackView struct {
	Name string
	Size int
	Top  *card.Card
}

// Snapshot is a read-only view of a game for rendering. Everything in it is
// copied out of the state, so holding or mutating a snapshot can never
// touch the running game.
type Snapshot struct {
	ID          string
	Columns     []ColumnView
	Stacks      []StackView
	StockSize   int
	StockTop    *card.Card
	WasteSize   int
	MoveCount   int
	BaseScore   int64
	TimeScore   int64
	Score       int64
	Elapsed     time.Duration
	StockCycles int
	Won         bool
}

// Snapshot derives the current render view from the state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		ID:          s.ID,
		Columns:     make([]ColumnView, 0, len(ColumnNames)),
		Stacks:      make([]StackView, 0, len(StackNames)),
		StockSize:   s.Stock.Size(),
		WasteSize:   s.Waste.Size(),
		MoveCount:   s.MoveCount(),
		BaseScore:   s.BaseScore,
		TimeScore:   s.TimeScore,
		Score:       s.Score(),
		Elapsed:     s.Elapsed(),
		StockCycles: s.StockCycles,
		Won:         s.Won,
	}

	for _, name := range ColumnNames {
		column := s.Columns[name]
		faceUp := make([]card.Card, column.Size()-column.Invisible)
		copy(faceUp, column.Cards[column.Invisible:])
		snap.Columns = append(snap.Columns, ColumnView{
			Name:     name,
			FaceDown: column.Invisible,
			FaceUp:   faceUp,
		})
	}

	for _, name := range StackNames {
		pile := s.Stacks[name]
		view := StackView{Name: name, Size: pile.Size()}
		if !pile.IsEmpty() {
			top := pile.Top()
			view.Top = &top
		}
		snap.Stacks = append(snap.Stacks, view)
	}

	if !s.Stock.IsEmpty() {
		top := s.Stock.Top()
		snap.StockTop = &top
	}

	return snap
}
