package game

import "strings"

// Status tracks a hand through its turn. Every state but active is terminal.
type Status int

const (
	StatusActive Status = iota
	StatusBlackjack
	StatusBust
	StatusStand
	StatusDouble
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusBlackjack:
		return "blackjack"
	case StatusBust:
		return "bust"
	case StatusStand:
		return "stand"
	case StatusDouble:
		return "double"
	default:
		return "unknown"
	}
}

// Terminal reports whether the hand can take no further action.
func (s Status) Terminal() bool {
	return s != StatusActive
}

// Hand is an ordered sequence of cards belonging to one participant.
type Hand struct {
	Cards []Card
}

// Value computes the blackjack total. Non-aces are summed first so that every
// ace is valued against the full hard total; each ace then counts 11 only if
// the total stays at or under 21. The result never depends on deal order.
func (h Hand) Value() int {
	value, aces := 0, 0
	for _, c := range h.Cards {
		if c.Rank == Ace {
			aces++
			continue
		}
		value += c.Value(value)
	}
	for range aces {
		if value+11 <= 21 {
			value += 11
		} else {
			value++
		}
	}
	return value
}

// IsBlackjack reports a natural: exactly two cards totaling 21. A 21 reached
// with three or more cards is never a blackjack.
func (h Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && h.Value() == 21
}

// Busted reports a total over 21.
func (h Hand) Busted() bool {
	return h.Value() > 21
}

func (h Hand) String() string {
	tokens := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}
