package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShoeComposition(t *testing.T) {
	shoe := NewShoe(8, rand.New(rand.NewSource(1)))
	require.Equal(t, 8*52, shoe.Len())

	seen := make(map[Card]int)
	for _, c := range shoe.cards {
		seen[c]++
	}

	assert.Len(t, seen, 52)
	for card, n := range seen {
		assert.Equal(t, 8, n, "card %v", card)
	}
}

func TestNewShoeSingleDeckUncut(t *testing.T) {
	// a single deck is smaller than the cut window and dealt as shuffled
	shoe := NewShoe(1, rand.New(rand.NewSource(1)))
	require.Equal(t, 52, shoe.Len())

	seen := make(map[Card]bool)
	for _, c := range shoe.cards {
		assert.False(t, seen[c], "duplicate card %v", c)
		seen[c] = true
	}
}

func TestDrawDepletes(t *testing.T) {
	shoe := NewShoe(8, rand.New(rand.NewSource(2)))
	shoe.SetThreshold(0)

	before := shoe.Len()
	shoe.Draw()
	shoe.Draw()
	assert.Equal(t, before-2, shoe.Len())
}

func TestDrawReshufflesUnderThreshold(t *testing.T) {
	shoe := NewShoe(1, rand.New(rand.NewSource(3)))
	shoe.SetThreshold(20)

	reshuffles := 0
	shoe.OnReshuffle = func(remaining int) {
		reshuffles++
		assert.Equal(t, 52, remaining)
	}

	// draw down to exactly the threshold; no reshuffle yet
	for shoe.Len() > 20 {
		shoe.Draw()
	}
	require.Equal(t, 0, reshuffles)

	// at 20 cards the next draw still happens from the old shoe
	shoe.Draw()
	assert.Equal(t, 0, reshuffles)
	assert.Equal(t, 19, shoe.Len())

	// under the threshold the shoe replaces itself before dealing
	shoe.Draw()
	assert.Equal(t, 1, reshuffles)
	assert.Equal(t, 51, shoe.Len())
}

func TestRunningCount(t *testing.T) {
	shoe := &Shoe{decks: 1, cards: []Card{
		{Suit: Spade, Rank: Five}, // drawn last
		{Suit: Heart, Rank: Eight},
		{Suit: Club, Rank: King}, // drawn first
	}}

	assert.Equal(t, 0, shoe.RunningCount())

	shoe.Draw() // K: +1
	assert.Equal(t, 1, shoe.RunningCount())
	shoe.Draw() // 8: 0
	assert.Equal(t, 1, shoe.RunningCount())
	shoe.Draw() // 5: -1
	assert.Equal(t, 0, shoe.RunningCount())
}

func TestRunningCountResetsOnReshuffle(t *testing.T) {
	shoe := NewShoe(1, rand.New(rand.NewSource(4)))
	shoe.SetThreshold(40)

	for i := 0; i < 13; i++ { // 52 -> 39, one card under the threshold
		shoe.Draw()
	}

	card := shoe.Draw() // reshuffles first, then deals
	assert.Equal(t, 51, shoe.Len())
	assert.Equal(t, card.CountValue(), shoe.RunningCount())
}
