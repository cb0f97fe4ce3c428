// Package rule holds the legality checks for card moves. All checks are pure
// and side-effect free: they read the decks they are given and report the
// first violated rule as an error, so callers can validate before mutating.
package rule

import (
	"github.com/palemoky/klondike/internal/apperrors"
	"github.com/palemoky/klondike/internal/game/card"
)

// CheckDeckLevel verifies a transfer at the deck level: source and
// destination identity, emptiness and card visibility. The rank and suit of
// the cards involved are not considered here.
func CheckDeckLevel(source *card.Deck, sourceIndex int, destination *card.Deck) error {
	if source == destination {
		return apperrors.Illegal("Move source and destination can't be the same")
	}
	if source.IsEmpty() {
		return apperrors.Illegal("You can't move a card from an empty deck")
	}
	if destination.Kind == card.KindStock {
		return apperrors.Illegal("You can't move cards to the stock")
	}
	if !source.IsVisible(sourceIndex) {
		return apperrors.Illegal("You can't move an invisible card")
	}
	if sourceIndex < source.Size()-1 && destination.Kind == card.KindStack {
		return apperrors.Illegal("You can't move more than 1 card at a time to a Stack Pile")
	}
	return nil
}

// CheckCardLevel verifies that the first moved card may land on the
// destination deck, dispatching on the destination kind. A destination that
// is neither a stack pile nor a column is a defect: deck-level checks rule
// out the stock and the waste is never addressable.
func CheckCardLevel(destination *card.Deck, cardToAdd card.Card) error {
	switch destination.Kind {
	case card.KindStack:
		if destination.IsEmpty() {
			if cardToAdd.Rank != card.Ace {
				return apperrors.Illegal("An Ace has to be the first card of a Stack Pile")
			}
			return nil
		}
		return checkStackMove(destination.Top(), cardToAdd)
	case card.KindColumn:
		if destination.IsEmpty() {
			if cardToAdd.Rank != card.King {
				return apperrors.Illegal("A King has to be the first card of a Column")
			}
			return nil
		}
		return checkColumnMove(destination.Top(), cardToAdd)
	default:
		apperrors.Contract("target deck is neither Stack nor Column")
		return nil
	}
}

// checkStackMove verifies a move onto a non-empty stack pile: same suit,
// rank exactly one higher than the current top.
func checkStackMove(target, cardToAdd card.Card) error {
	if target.Rank+1 != cardToAdd.Rank {
		return apperrors.Illegal("Stack Piles hold same-suit cards of increasing Rank from Ace to King")
	}
	if target.Suit != cardToAdd.Suit {
		return apperrors.Illegal("Stack Piles can only contain same-suit cards")
	}
	return nil
}

// checkColumnMove verifies a move onto a non-empty column: opposing colors,
// rank exactly one lower than the current top.
func checkColumnMove(target, cardToAdd card.Card) error {
	if target.Color() == cardToAdd.Color() {
		return apperrors.Illegal("Column cards have to alternate colors (red and black)")
	}
	if target.Rank != cardToAdd.Rank+1 {
		return apperrors.Illegal("Columns hold alternating-color cards of decreasing rank from King to Two")
	}
	return nil
}
