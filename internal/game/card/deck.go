package card

import (
	"slices"

	"github.com/palemoky/klondike/internal/apperrors"
)

// DeckKind tags the role a deck plays on the board. Move legality and
// scoring depend on it.
type DeckKind int

const (
	KindStock DeckKind = iota
	KindWaste
	KindColumn
	KindStack
)

// kindNames maps deck kinds to display names.
var kindNames = map[DeckKind]string{
	KindStock:  "Stock",
	KindWaste:  "Waste",
	KindColumn: "Column",
	KindStack:  "Stack",
}

func (k DeckKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Deck is an ordered pile of cards. Index 0 is the bottom; the last element
// is the top. Invisible counts the face-down cards at the base of a column
// and stays zero for every other kind.
type Deck struct {
	Kind      DeckKind
	Cards     []Card
	Invisible int
}

// Size returns the number of cards in the deck.
func (d *Deck) Size() int {
	return len(d.Cards)
}

// IsEmpty reports whether the deck holds no cards.
func (d *Deck) IsEmpty() bool {
	return len(d.Cards) == 0
}

// IsVisible reports whether the card at index i is face-up.
func (d *Deck) IsVisible(i int) bool {
	return i >= d.Invisible
}

// Top returns the top card. Reading the top of an empty deck is a defect.
func (d *Deck) Top() Card {
	if len(d.Cards) == 0 {
		apperrors.Contract("top of empty %v deck", d.Kind)
	}
	return d.Cards[len(d.Cards)-1]
}

// Pop removes and returns the top card. Popping an empty deck is a defect.
func (d *Deck) Pop() Card {
	if len(d.Cards) == 0 {
		apperrors.Contract("pop of empty %v deck", d.Kind)
	}
	top := d.Cards[len(d.Cards)-1]
	d.Cards = d.Cards[:len(d.Cards)-1]
	return top
}

// PopBottom removes and returns the bottom card. Popping an empty deck is a
// defect.
func (d *Deck) PopBottom() Card {
	if len(d.Cards) == 0 {
		apperrors.Contract("pop bottom of empty %v deck", d.Kind)
	}
	bottom := d.Cards[0]
	d.Cards = slices.Delete(d.Cards, 0, 1)
	return bottom
}

// PushBottom slides a card under the deck.
func (d *Deck) PushBottom(c Card) {
	d.Cards = slices.Insert(d.Cards, 0, c)
}

// Append adds cards on top of the deck, preserving their order.
func (d *Deck) Append(cards ...Card) {
	d.Cards = append(d.Cards, cards...)
}

// TakeFrom removes and returns the cards from index i through the top,
// preserving their order. An index outside the deck is a defect.
func (d *Deck) TakeFrom(i int) []Card {
	if i < 0 || i >= len(d.Cards) {
		apperrors.Contract("take from %v deck at index %d, size %d", d.Kind, i, len(d.Cards))
	}
	taken := make([]Card, len(d.Cards)-i)
	copy(taken, d.Cards[i:])
	d.Cards = d.Cards[:i]
	return taken
}

// dealSuits is the suit order of a fresh pack. The layout is fixed so that
// seeded shuffles reproduce identical deals.
var dealSuits = [...]Suit{Spades, Hearts, Clubs, Diamonds}

// NewPack returns an ordered 52-card pack, suit by suit with ranks running
// Ace through King. Jokers are not part of the pack.
func NewPack() []Card {
	pack := make([]Card, 0, 52)
	for _, s := range dealSuits {
		for r := Ace; r <= King; r++ {
			pack = append(pack, Card{Suit: s, Rank: r})
		}
	}
	return pack
}
