package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardfelt/blackjack/game"
)

func TestCardLines(t *testing.T) {
	lines := cardLines(game.Card{Suit: game.Spade, Rank: game.Ace}, false)
	require.Len(t, lines, cardHeight)

	assert.Contains(t, lines[1], "A")
	assert.Contains(t, lines[3], "♠")
	assert.Contains(t, lines[5], "A")
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.True(t, strings.HasPrefix(lines[cardHeight-1], "└"))
}

func TestCardLinesHidden(t *testing.T) {
	lines := cardLines(game.Card{Suit: game.Heart, Rank: game.King}, true)
	require.Len(t, lines, cardHeight)

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "░")
	assert.NotContains(t, joined, "K", "a hidden card must not leak its rank")
	assert.NotContains(t, joined, "♥")
}

func TestHandArt(t *testing.T) {
	rows := handArt([]game.Card{
		{Suit: game.Spade, Rank: game.Ten},
		{Suit: game.Heart, Rank: game.Ace},
	}, false)
	require.Len(t, rows, cardHeight)

	assert.Contains(t, rows[1], "10")
	assert.Contains(t, rows[1], "A")

	assert.Nil(t, handArt(nil, false))
}

func TestHandArtHidesHoleCard(t *testing.T) {
	rows := handArt([]game.Card{
		{Suit: game.Spade, Rank: game.Nine},
		{Suit: game.Heart, Rank: game.King},
	}, true)

	joined := strings.Join(rows, "\n")
	assert.Contains(t, joined, "9")
	assert.NotContains(t, joined, "K")
}

func TestHandleHandResolved(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRenderer(out, false)

	r.Handle(game.HandResolved{
		Round:   uuid.New(),
		Name:    "Alice",
		Cards:   []game.Card{{Suit: game.Spade, Rank: game.Ace}, {Suit: game.Heart, Rank: game.King}},
		Value:   21,
		Outcome: game.OutcomeBlackjack,
		Payout:  decimal.NewFromInt(100),
		Chips:   decimal.NewFromInt(150),
	})

	text := out.String()
	assert.Contains(t, text, "Alice")
	assert.Contains(t, text, "Blackjack!")
	assert.Contains(t, text, "+100")
	assert.Contains(t, text, "150 chips")
}

func TestHandleDealerEvents(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRenderer(out, false)

	r.Handle(game.DealerStood{Value: 17})
	assert.Contains(t, out.String(), "Dealer stands (17)")

	out.Reset()
	r.Handle(game.DealerBusted{Value: 26})
	assert.Contains(t, out.String(), "busts! (26)")

	out.Reset()
	r.Handle(game.ShoeReshuffled{Remaining: 416})
	assert.Contains(t, out.String(), "fresh")
}

func TestHandleHoleCardStaysHidden(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRenderer(out, false)

	r.Handle(game.CardDealt{
		Name: game.DealerName,
		Card: game.Card{Suit: game.Club, Rank: game.King},
		Cards: []game.Card{
			{Suit: game.Spade, Rank: game.Nine},
			{Suit: game.Club, Rank: game.King},
		},
		Hole:  true,
		Value: 9,
	})

	text := out.String()
	assert.Contains(t, text, "face-down")
	assert.Contains(t, text, "9")
	assert.NotContains(t, text, "K♣", "the hole card must not leak")
}

func TestBannerNonInteractive(t *testing.T) {
	out := &bytes.Buffer{}
	NewRenderer(out, false).Banner()

	text := out.String()
	assert.Contains(t, text, "Interactive ASCII Blackjack")
	assert.NotContains(t, text, "\033[2J", "no screen clear when piped")
}
