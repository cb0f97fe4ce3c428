package game

import (
	"fmt"

	"github.com/palemoky/klondike/internal/apperrors"
)

// cycleBranch records which outcome a stock cycle took, so the move can be
// reverted exactly.
type cycleBranch int

const (
	// cycleTurnOver moved the top stock card to the waste and bumped the
	// cycle counter.
	cycleTurnOver cycleBranch = iota
	// cycleLastCard turned over the last stock card without touching the
	// counter.
	cycleLastCard
	// cycleRecycle moved the bottom waste card back onto the stock.
	cycleRecycle
)

// CycleStock turns over the stock. While more than one card is in the stock
// the top card moves to the waste and counts a cycle; when the stock is down
// to its last card the bottom waste card is pulled back on top of it instead.
// Alternating the two walks the whole pack past the player in deal order.
type CycleStock struct {
	state     moveState
	branch    cycleBranch
	prevScore int64
}

// NewCycleStock builds a stock cycle move.
func NewCycleStock() *CycleStock {
	return &CycleStock{}
}

func (m *CycleStock) isMove() {}

// Name returns the display name of the move.
func (m *CycleStock) Name() string {
	return "Cycle stock"
}

// Apply cycles the stock once. Every successful cycle costs 100 points.
func (m *CycleStock) Apply(s *State) (string, error) {
	if m.state != moveCreated {
		apperrors.Contract("cycle stock applied twice")
	}

	stock, waste := s.Stock, s.Waste
	if stock.IsEmpty() && waste.IsEmpty() {
		return "", apperrors.Illegal("Stock is empty")
	}

	switch {
	case stock.Size() > 1:
		waste.Append(stock.Pop())
		s.StockCycles++
		m.branch = cycleTurnOver
	case waste.IsEmpty():
		// The stock is down to its last card. Turn it over without counting
		// a cycle; the next call starts recycling the waste.
		waste.Append(stock.Pop())
		m.branch = cycleLastCard
	default:
		stock.Append(waste.PopBottom())
		m.branch = cycleRecycle
	}

	m.prevScore = s.BaseScore
	s.BaseScore = m.prevScore - 100

	s.Moves = append(s.Moves, m)
	m.state = moveApplied

	return fmt.Sprintf("Stock card %d out of %d, cycle %d",
		stock.Size(), stock.Size()+waste.Size(), s.StockCycles), nil
}

// Revert undoes whichever branch fired and rolls the score back.
func (m *CycleStock) Revert(s *State) {
	if m.state != moveApplied {
		apperrors.Contract("revert of a cycle stock that is not applied")
	}
	popHistory(s, m)

	stock, waste := s.Stock, s.Waste
	switch m.branch {
	case cycleTurnOver:
		stock.Append(waste.Pop())
		s.StockCycles--
	case cycleLastCard:
		stock.Append(waste.Pop())
	case cycleRecycle:
		waste.PushBottom(stock.Pop())
	}

	s.BaseScore = m.prevScore
	m.state = moveReverted
}
