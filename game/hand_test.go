package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func cards(ranks ...Rank) []Card {
	out := make([]Card, len(ranks))
	for i, r := range ranks {
		out[i] = Card{Suit: Suit(i % 4), Rank: r}
	}
	return out
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name  string
		ranks []Rank
		want  int
	}{
		{"empty", nil, 0},
		{"no aces", []Rank{Ten, Seven}, 17},
		{"face cards", []Rank{King, Queen, Jack}, 30},
		{"single ace high", []Rank{Ace, Nine}, 20},
		{"single ace low", []Rank{Ace, Nine, Five}, 15},
		{"two aces", []Rank{Ace, Ace}, 12},
		{"two aces and nine", []Rank{Ace, Ace, Nine}, 21},
		{"three aces and eight", []Rank{Ace, Ace, Ace, Eight}, 21},
		{"blackjack", []Rank{Ace, King}, 21},
		{"bust", []Rank{King, Queen, Two}, 22},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Hand{Cards: cards(tc.ranks...)}.Value())
		})
	}
}

// The total must depend only on which cards are in the hand, never on the
// order they arrived in.
func TestHandValueOrderInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	multisets := [][]Rank{
		{Ace, Ten},
		{Ace, Ace, Nine},
		{Ace, Five, Ace, Four},
		{Ace, Ace, Ace, Eight},
		{King, Ace, Nine, Ace},
		{Two, Ace, Three, Ace, Four},
	}

	for _, ranks := range multisets {
		hand := Hand{Cards: cards(ranks...)}
		want := hand.Value()

		for i := 0; i < 20; i++ {
			shuffled := Hand{Cards: append([]Card(nil), hand.Cards...)}
			rng.Shuffle(len(shuffled.Cards), func(i, j int) {
				shuffled.Cards[i], shuffled.Cards[j] = shuffled.Cards[j], shuffled.Cards[i]
			})
			assert.Equal(t, want, shuffled.Value(), "ranks %v order %v", ranks, shuffled.Cards)
		}
	}
}

func TestIsBlackjack(t *testing.T) {
	assert.True(t, Hand{Cards: cards(Ace, King)}.IsBlackjack())
	assert.True(t, Hand{Cards: cards(Ten, Ace)}.IsBlackjack())

	// 21 in three cards is not a natural
	assert.False(t, Hand{Cards: cards(Seven, Seven, Seven)}.IsBlackjack())
	assert.False(t, Hand{Cards: cards(Ace, Five, Five)}.IsBlackjack())

	assert.False(t, Hand{Cards: cards(Ten, Nine)}.IsBlackjack())
	assert.False(t, Hand{Cards: cards(Ace)}.IsBlackjack())
}

func TestBusted(t *testing.T) {
	assert.False(t, Hand{Cards: cards(Ten, Ace)}.Busted())
	assert.False(t, Hand{Cards: cards(Ten, Ten, Ace)}.Busted())
	assert.True(t, Hand{Cards: cards(Ten, Ten, Two)}.Busted())
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusActive.Terminal())
	for _, s := range []Status{StatusBlackjack, StatusBust, StatusStand, StatusDouble} {
		assert.True(t, s.Terminal(), "status %s", s)
	}
}
