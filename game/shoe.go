package game

import (
	"math/rand"
	"time"
)

// DefaultReshuffleThreshold matches the house rule: a fresh shoe comes in
// once fewer than 60 cards remain.
const DefaultReshuffleThreshold = 60

// cut depth bounds: the shoe is rotated somewhere in its bottom 60-80 cards
// so the deep end is never dealt in order.
const (
	cutMin = 60
	cutMax = 80
)

// Shoe is the combined multi-deck stack that all cards are dealt from. It is
// created once per session and replaces itself wholesale when it runs low,
// possibly mid-round.
type Shoe struct {
	cards     []Card
	decks     int
	threshold int
	count     int
	rng       *rand.Rand

	// OnReshuffle, if set, runs after the shoe has rebuilt itself and the
	// running count has reset.
	OnReshuffle func(remaining int)
}

// NewShoe builds a shuffled, cut shoe of decks x 52 cards. A nil rng gets a
// time-seeded one.
func NewShoe(decks int, rng *rand.Rand) *Shoe {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Shoe{decks: decks, threshold: DefaultReshuffleThreshold, rng: rng}
	s.rebuild()
	return s
}

// SetThreshold overrides the replenishment threshold.
func (s *Shoe) SetThreshold(cards int) {
	s.threshold = cards
}

func (s *Shoe) rebuild() {
	cards := make([]Card, 0, 52*s.decks)
	for range s.decks {
		for suit := Spade; suit <= Club; suit++ {
			for rank := Ace; rank <= King; rank++ {
				cards = append(cards, Card{Suit: suit, Rank: rank})
			}
		}
	}

	s.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	// Shoes smaller than the cut window are dealt uncut.
	if n := len(cards); n > cutMax {
		cut := n - cutMax + s.rng.Intn(cutMax-cutMin+1)
		cards = append(cards[cut:], cards[:cut]...)
	}

	s.cards = cards
	s.count = 0
}

// Draw deals one card off the top. If the shoe has dropped under the
// threshold it is discarded and rebuilt first, so a draw never sees an empty
// shoe.
func (s *Shoe) Draw() Card {
	if len(s.cards) < s.threshold || len(s.cards) == 0 {
		s.rebuild()
		if s.OnReshuffle != nil {
			s.OnReshuffle(len(s.cards))
		}
	}

	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	s.count += card.CountValue()
	return card
}

// Len is the number of cards still in the shoe.
func (s *Shoe) Len() int {
	return len(s.cards)
}

// Decks is the shoe's size in standard decks.
func (s *Shoe) Decks() int {
	return s.decks
}

// RunningCount is the cumulative count of every card dealt since the last
// reshuffle.
func (s *Shoe) RunningCount() int {
	return s.count
}
