package card

import (
	"strconv"

	"github.com/palemoky/klondike/internal/apperrors"
)

// Suit identifies a card suit, ordered according to bridge rules plus Joker.
// The order is relied on by the deal layout and must not change.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
	Joker
)

// Color classifies a suit as red or black.
type Color int

const (
	Black Color = iota
	Red
)

// suitSymbols maps suits to Unicode glyphs.
var suitSymbols = map[Suit]string{
	Clubs:    "♧",
	Diamonds: "♦",
	Hearts:   "♥",
	Spades:   "♤",
	Joker:    "*",
}

// suitLetters maps suits to plain letters for terminals that render the
// glyphs poorly.
var suitLetters = map[Suit]string{
	Clubs:    "C",
	Diamonds: "D",
	Hearts:   "H",
	Spades:   "S",
	Joker:    "*",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return "?"
}

// Letter returns the ASCII fallback symbol of the suit.
func (s Suit) Letter() string {
	if letter, ok := suitLetters[s]; ok {
		return letter
	}
	return "?"
}

// Color returns the color of the suit. Jokers have no color, so asking for
// one is a defect.
func (s Suit) Color() Color {
	switch s {
	case Diamonds, Hearts:
		return Red
	case Clubs, Spades:
		return Black
	default:
		apperrors.Contract("suit %v has no color", s)
		return Black
	}
}

// Rank is a card rank. Ace is low; the values run 0 through 12 and order
// both stack pile and column sequences.
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// rankNames maps ranks to their display names.
var rankNames = map[Rank]string{
	Ace:   "A",
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Card is a single playing card. Cards are plain values and compare with ==.
type Card struct {
	Suit Suit
	Rank Rank
}

// String renders the card as suit glyph and rank, for example "♥ K".
func (c Card) String() string {
	return c.Suit.String() + " " + c.Rank.String()
}

// Text renders the card with the ASCII suit letter, for example "H K".
func (c Card) Text() string {
	return c.Suit.Letter() + " " + c.Rank.String()
}

// Color returns the color of the card's suit.
func (c Card) Color() Color {
	return c.Suit.Color()
}
