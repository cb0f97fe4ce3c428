package game

import (
	"fmt"
	"strconv"

	"github.com/palemoky/klondike/internal/apperrors"
	"github.com/palemoky/klondike/internal/game/card"
	"github.com/palemoky/klondike/internal/game/rule"
)

// Transfer moves one or more cards from a source deck to a destination deck.
// The source token names the stock, a stack pile or a column coordinate; the
// destination token names a column or a stack pile. Everything needed to
// undo the move exactly is captured during Apply.
type Transfer struct {
	source      string
	destination string
	state       moveState

	sourceDeck *card.Deck
	destDeck   *card.Deck
	moved      []card.Card
	exposed    bool
	prevScore  int64
}

// NewTransfer builds a transfer of the cards at sourceToken to
// destinationToken. Tokens must already be normalized to upper case.
func NewTransfer(sourceToken, destinationToken string) *Transfer {
	return &Transfer{source: sourceToken, destination: destinationToken}
}

func (m *Transfer) isMove() {}

// Name returns the display name of the move.
func (m *Transfer) Name() string {
	return "Move"
}

// Apply validates and executes the transfer. Validation runs in three
// layers, token syntax, deck level and card level, before any card moves,
// so a failed transfer leaves the state exactly as it was.
func (m *Transfer) Apply(s *State) (string, error) {
	if m.state != moveCreated {
		apperrors.Contract("transfer %s to %s applied twice", m.source, m.destination)
	}

	if err := rule.CheckTokens(m.source, m.destination); err != nil {
		return "", err
	}

	sourceDeck, sourceIndex, err := m.resolveSource(s)
	if err != nil {
		return "", err
	}
	destDeck := m.resolveDestination(s)

	if err := rule.CheckDeckLevel(sourceDeck, sourceIndex, destDeck); err != nil {
		return "", err
	}
	if err := rule.CheckCardLevel(destDeck, sourceDeck.Cards[sourceIndex]); err != nil {
		return "", err
	}

	m.sourceDeck = sourceDeck
	m.destDeck = destDeck
	m.moved = sourceDeck.TakeFrom(sourceIndex)
	destDeck.Append(m.moved...)

	if sourceDeck.Kind == card.KindColumn && sourceDeck.Invisible > 0 && sourceDeck.Size() == sourceDeck.Invisible {
		sourceDeck.Invisible--
		m.exposed = true
	}

	m.prevScore = s.BaseScore
	s.BaseScore = m.prevScore + m.scoreDelta()

	s.Moves = append(s.Moves, m)
	m.state = moveApplied

	return fmt.Sprintf("Moved [%s] from %s to %s", m.moved[0], m.source, m.destination), nil
}

// Revert puts the moved cards back, restores the exposed card to face-down
// and rolls the score back to its value before Apply.
func (m *Transfer) Revert(s *State) {
	if m.state != moveApplied {
		apperrors.Contract("revert of a transfer that is not applied")
	}
	popHistory(s, m)

	cards := m.destDeck.TakeFrom(m.destDeck.Size() - len(m.moved))
	if m.exposed {
		m.sourceDeck.Invisible++
	}
	m.sourceDeck.Append(cards...)

	s.BaseScore = m.prevScore
	m.state = moveReverted
}

// resolveSource maps the source token to its deck and card index. Stock and
// stack sources always address the top card; column sources carry an
// explicit row that must exist.
func (m *Transfer) resolveSource(s *State) (*card.Deck, int, error) {
	if rule.IsColumnToken(m.source) {
		name := m.source[:1]
		row, err := strconv.Atoi(m.source[1:])
		if err != nil {
			apperrors.Contract("column row %q is not numeric", m.source)
		}
		column := s.Columns[name]
		if row >= column.Size() {
			return nil, 0, apperrors.Illegal("Column %s has no card %d", name, row)
		}
		return column, row, nil
	}
	if m.source == rule.StockToken {
		return s.Stock, s.Stock.Size() - 1, nil
	}
	return s.Stacks[m.source], s.Stacks[m.source].Size() - 1, nil
}

// resolveDestination maps the destination token to its deck: a single
// letter names a column, anything else a stack pile.
func (m *Transfer) resolveDestination(s *State) *card.Deck {
	if len(m.destination) == 1 {
		return s.Columns[m.destination]
	}
	return s.Stacks[m.destination]
}

// scoreDelta computes the score change of this transfer. At most one of the
// placement bonuses applies; the exposure bonus and the stack pile penalty
// stack on top.
func (m *Transfer) scoreDelta() int64 {
	var delta int64
	switch {
	case m.sourceDeck.Kind == card.KindStock && m.destDeck.Kind == card.KindColumn:
		delta += 5
	case m.sourceDeck.Kind == card.KindStock && m.destDeck.Kind == card.KindStack:
		delta += 10
	case m.sourceDeck.Kind == card.KindColumn && m.destDeck.Kind == card.KindStack:
		delta += 10
	}
	if m.exposed {
		delta += 5
	}
	if m.sourceDeck.Kind == card.KindStack {
		delta -= 15
	}
	return delta
}
