package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Suit uint8

const (
	Spade Suit = iota
	Heart
	Diamond
	Club
)

func (s Suit) String() string {
	return [...]string{"♠", "♥", "♦", "♣"}[s]
}

// Red reports whether the suit prints red at the table.
func (s Suit) Red() bool {
	return s == Heart || s == Diamond
}

type Rank uint8

const (
	_ Rank = iota
	Ace
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

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card is an immutable rank/suit pair. The suit never affects scoring.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Value returns the card's blackjack value. Face cards count 10. An ace
// counts 11 unless that would push the running total past 21, in which case
// it counts 1.
func (c Card) Value(running int) int {
	switch c.Rank {
	case Jack, Queen, King:
		return 10
	case Ace:
		if running+11 <= 21 {
			return 11
		}
		return 1
	default:
		return int(c.Rank)
	}
}

// CountValue is the card's contribution to the running count shown between
// deals: -1 for 2-6, 0 for 7-9, +1 for tens, faces and aces. Informational
// only, it never enters payout math.
func (c Card) CountValue() int {
	switch {
	case c.Rank >= Two && c.Rank <= Six:
		return -1
	case c.Rank >= Seven && c.Rank <= Nine:
		return 0
	default:
		return 1
	}
}

// ErrInvalidCard is returned for a token that does not name a card. A shoe
// never produces one; seeing this means a bug upstream.
var ErrInvalidCard = errors.New("invalid card")

var suitRunes = map[rune]Suit{'♠': Spade, '♥': Heart, '♦': Diamond, '♣': Club}

// ParseCard parses a display token such as "A♠" or "10♦" back into a Card.
func ParseCard(token string) (Card, error) {
	runes := []rune(token)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, token)
	}

	suit, ok := suitRunes[runes[len(runes)-1]]
	if !ok {
		return Card{}, fmt.Errorf("%w: %q has no suit", ErrInvalidCard, token)
	}

	var rank Rank
	switch strings.ToUpper(string(runes[:len(runes)-1])) {
	case "A":
		rank = Ace
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		n, err := strconv.Atoi(string(runes[:len(runes)-1]))
		if err != nil || n < 2 || n > 10 {
			return Card{}, fmt.Errorf("%w: %q has no rank", ErrInvalidCard, token)
		}
		rank = Rank(n)
	}

	return Card{Suit: suit, Rank: rank}, nil
}
