package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/klondike/internal/apperrors"
	"github.com/palemoky/klondike/internal/game/card"
)

func TestCheckDeckLevel(t *testing.T) {
	t.Parallel()

	column := func(invisible int, cards ...card.Card) *card.Deck {
		return &card.Deck{Kind: card.KindColumn, Cards: cards, Invisible: invisible}
	}

	tests := []struct {
		name    string
		source  func() (*card.Deck, int, *card.Deck)
		wantErr string
	}{
		{
			name: "Same source and destination",
			source: func() (*card.Deck, int, *card.Deck) {
				d := column(0, card.Card{Suit: card.Spades, Rank: card.King})
				return d, 0, d
			},
			wantErr: "Move source and destination can't be the same",
		},
		{
			name: "Empty source deck",
			source: func() (*card.Deck, int, *card.Deck) {
				return column(0), 0, column(0, card.Card{Suit: card.Spades, Rank: card.King})
			},
			wantErr: "You can't move a card from an empty deck",
		},
		{
			name: "Stock as destination",
			source: func() (*card.Deck, int, *card.Deck) {
				src := column(0, card.Card{Suit: card.Spades, Rank: card.King})
				return src, 0, &card.Deck{Kind: card.KindStock}
			},
			wantErr: "You can't move cards to the stock",
		},
		{
			name: "Invisible source card",
			source: func() (*card.Deck, int, *card.Deck) {
				src := column(1,
					card.Card{Suit: card.Spades, Rank: card.King},
					card.Card{Suit: card.Hearts, Rank: card.Queen},
				)
				return src, 0, column(0)
			},
			wantErr: "You can't move an invisible card",
		},
		{
			name: "Multiple cards to a stack pile",
			source: func() (*card.Deck, int, *card.Deck) {
				src := column(0,
					card.Card{Suit: card.Spades, Rank: card.Two},
					card.Card{Suit: card.Hearts, Rank: card.Ace},
				)
				return src, 0, &card.Deck{Kind: card.KindStack}
			},
			wantErr: "You can't move more than 1 card at a time to a Stack Pile",
		},
		{
			name: "Single top card to a stack pile",
			source: func() (*card.Deck, int, *card.Deck) {
				src := column(0,
					card.Card{Suit: card.Spades, Rank: card.Two},
					card.Card{Suit: card.Hearts, Rank: card.Ace},
				)
				return src, 1, &card.Deck{Kind: card.KindStack}
			},
		},
		{
			name: "Run of cards to a column",
			source: func() (*card.Deck, int, *card.Deck) {
				src := column(1,
					card.Card{Suit: card.Spades, Rank: card.Ten},
					card.Card{Suit: card.Hearts, Rank: card.Nine},
					card.Card{Suit: card.Clubs, Rank: card.Eight},
				)
				return src, 1, column(0)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			src, idx, dst := tt.source()
			err := CheckDeckLevel(src, idx, dst)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsIllegalMove(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestCheckCardLevelStack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pile      []card.Card
		cardToAdd card.Card
		wantErr   string
	}{
		{
			name:      "Ace on empty pile",
			cardToAdd: card.Card{Suit: card.Hearts, Rank: card.Ace},
		},
		{
			name:      "Non-ace on empty pile",
			cardToAdd: card.Card{Suit: card.Hearts, Rank: card.Five},
			wantErr:   "An Ace has to be the first card of a Stack Pile",
		},
		{
			name:      "Next rank same suit",
			pile:      []card.Card{{Suit: card.Hearts, Rank: card.Ace}},
			cardToAdd: card.Card{Suit: card.Hearts, Rank: card.Two},
		},
		{
			name:      "Rank gap",
			pile:      []card.Card{{Suit: card.Hearts, Rank: card.Ace}},
			cardToAdd: card.Card{Suit: card.Hearts, Rank: card.Three},
			wantErr:   "Stack Piles hold same-suit cards of increasing Rank from Ace to King",
		},
		{
			name:      "Next rank wrong suit",
			pile:      []card.Card{{Suit: card.Hearts, Rank: card.Ace}},
			cardToAdd: card.Card{Suit: card.Spades, Rank: card.Two},
			wantErr:   "Stack Piles can only contain same-suit cards",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pile := &card.Deck{Kind: card.KindStack, Cards: tt.pile}
			err := CheckCardLevel(pile, tt.cardToAdd)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsIllegalMove(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestCheckCardLevelColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		column    []card.Card
		cardToAdd card.Card
		wantErr   string
	}{
		{
			name:      "King on empty column",
			cardToAdd: card.Card{Suit: card.Spades, Rank: card.King},
		},
		{
			name:      "Non-king on empty column",
			cardToAdd: card.Card{Suit: card.Spades, Rank: card.Queen},
			wantErr:   "A King has to be the first card of a Column",
		},
		{
			name:      "Opposing color descending rank",
			column:    []card.Card{{Suit: card.Spades, Rank: card.Eight}},
			cardToAdd: card.Card{Suit: card.Hearts, Rank: card.Seven},
		},
		{
			name:      "Same color",
			column:    []card.Card{{Suit: card.Spades, Rank: card.Eight}},
			cardToAdd: card.Card{Suit: card.Clubs, Rank: card.Seven},
			wantErr:   "Column cards have to alternate colors (red and black)",
		},
		{
			name:      "Rank gap",
			column:    []card.Card{{Suit: card.Spades, Rank: card.Eight}},
			cardToAdd: card.Card{Suit: card.Hearts, Rank: card.Six},
			wantErr:   "Columns hold alternating-color cards of decreasing rank from King to Two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			col := &card.Deck{Kind: card.KindColumn, Cards: tt.column}
			err := CheckCardLevel(col, tt.cardToAdd)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsIllegalMove(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestCheckCardLevelBadDestinationPanics(t *testing.T) {
	t.Parallel()

	waste := &card.Deck{Kind: card.KindWaste}
	assert.Panics(t, func() {
		_ = CheckCardLevel(waste, card.Card{Suit: card.Spades, Rank: card.Ace})
	})
}

func TestChecksLeaveDecksUntouched(t *testing.T) {
	t.Parallel()

	source := &card.Deck{Kind: card.KindColumn, Invisible: 1, Cards: []card.Card{
		{Suit: card.Clubs, Rank: card.Four},
		{Suit: card.Hearts, Rank: card.Eight},
	}}
	destination := &card.Deck{Kind: card.KindStack, Cards: []card.Card{
		{Suit: card.Hearts, Rank: card.Ace},
	}}
	sourceCards := append([]card.Card(nil), source.Cards...)
	destinationCards := append([]card.Card(nil), destination.Cards...)

	// Checking is pure: a second run over the same decks returns the same
	// verdict, and neither run moves a card.
	first := CheckDeckLevel(source, 1, destination)
	second := CheckDeckLevel(source, 1, destination)
	assert.NoError(t, first)
	assert.Equal(t, first, second)

	firstCard := CheckCardLevel(destination, source.Top())
	secondCard := CheckCardLevel(destination, source.Top())
	require.Error(t, firstCard)
	assert.Equal(t, firstCard, secondCard)

	assert.Equal(t, sourceCards, source.Cards)
	assert.Equal(t, 1, source.Invisible)
	assert.Equal(t, destinationCards, destination.Cards)
}
