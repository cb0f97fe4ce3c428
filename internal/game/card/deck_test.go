package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPack(t *testing.T) {
	t.Parallel()

	pack := NewPack()

	require.Len(t, pack, 52)

	// The pack is laid out suit by suit with ranks running Ace through King.
	assert.Equal(t, Card{Suit: Spades, Rank: Ace}, pack[0])
	assert.Equal(t, Card{Suit: Spades, Rank: King}, pack[12])
	assert.Equal(t, Card{Suit: Hearts, Rank: Ace}, pack[13])
	assert.Equal(t, Card{Suit: Clubs, Rank: Ace}, pack[26])
	assert.Equal(t, Card{Suit: Diamonds, Rank: King}, pack[51])

	seen := make(map[Card]bool)
	for _, c := range pack {
		assert.False(t, seen[c], "duplicate card %v", c)
		seen[c] = true
	}
}

func TestDeckTopAndPop(t *testing.T) {
	t.Parallel()

	d := &Deck{Kind: KindWaste, Cards: []Card{
		{Suit: Spades, Rank: Ace},
		{Suit: Hearts, Rank: Two},
	}}

	assert.Equal(t, Card{Suit: Hearts, Rank: Two}, d.Top())
	assert.Equal(t, 2, d.Size())

	top := d.Pop()
	assert.Equal(t, Card{Suit: Hearts, Rank: Two}, top)
	assert.Equal(t, 1, d.Size())
	assert.Equal(t, Card{Suit: Spades, Rank: Ace}, d.Top())
}

func TestDeckBottomOperations(t *testing.T) {
	t.Parallel()

	d := &Deck{Kind: KindWaste, Cards: []Card{
		{Suit: Spades, Rank: Ace},
		{Suit: Hearts, Rank: Two},
		{Suit: Clubs, Rank: Three},
	}}

	bottom := d.PopBottom()
	assert.Equal(t, Card{Suit: Spades, Rank: Ace}, bottom)
	assert.Equal(t, []Card{{Suit: Hearts, Rank: Two}, {Suit: Clubs, Rank: Three}}, d.Cards)

	d.PushBottom(Card{Suit: Diamonds, Rank: Four})
	assert.Equal(t, Card{Suit: Diamonds, Rank: Four}, d.Cards[0])
	assert.Equal(t, 3, d.Size())
}

func TestDeckTakeFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cards     []Card
		index     int
		taken     []Card
		remaining []Card
	}{
		{
			name: "Take top card only",
			cards: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: Two},
			},
			index:     1,
			taken:     []Card{{Suit: Hearts, Rank: Two}},
			remaining: []Card{{Suit: Spades, Rank: Ace}},
		},
		{
			name: "Take a run of cards",
			cards: []Card{
				{Suit: Spades, Rank: King},
				{Suit: Hearts, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
			index: 1,
			taken: []Card{
				{Suit: Hearts, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
			remaining: []Card{{Suit: Spades, Rank: King}},
		},
		{
			name: "Take the whole deck",
			cards: []Card{
				{Suit: Spades, Rank: King},
				{Suit: Hearts, Rank: Queen},
			},
			index: 0,
			taken: []Card{
				{Suit: Spades, Rank: King},
				{Suit: Hearts, Rank: Queen},
			},
			remaining: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := &Deck{Kind: KindColumn, Cards: tt.cards}
			taken := d.TakeFrom(tt.index)
			assert.Equal(t, tt.taken, taken)
			assert.Equal(t, tt.remaining, d.Cards)
		})
	}
}

func TestDeckIsVisible(t *testing.T) {
	t.Parallel()

	d := &Deck{Kind: KindColumn, Invisible: 2, Cards: []Card{
		{Suit: Spades, Rank: Ace},
		{Suit: Hearts, Rank: Two},
		{Suit: Clubs, Rank: Three},
	}}

	assert.False(t, d.IsVisible(0))
	assert.False(t, d.IsVisible(1))
	assert.True(t, d.IsVisible(2))
}

func TestDeckEmptyOperationsPanic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		d := &Deck{Kind: KindStock}
		d.Top()
	})
	assert.Panics(t, func() {
		d := &Deck{Kind: KindStock}
		d.Pop()
	})
	assert.Panics(t, func() {
		d := &Deck{Kind: KindWaste}
		d.PopBottom()
	})
	assert.Panics(t, func() {
		d := &Deck{Kind: KindColumn, Cards: []Card{{Suit: Spades, Rank: Ace}}}
		d.TakeFrom(3)
	})
}
