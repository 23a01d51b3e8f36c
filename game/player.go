package game

import "github.com/shopspring/decimal"

// Player is a seated participant with a bankroll. Chips are the only field
// that outlives a round; everything else resets when hands do. The dealer is
// not a Player, it is a bare Hand on the table with no chips and no bet.
type Player struct {
	Name    string
	Chips   decimal.Decimal
	Bet     decimal.Decimal
	Hand    Hand
	Doubled bool
	Status  Status

	// SittingOut marks a player who declined the top-up offer and skips the
	// current round without leaving the table.
	SittingOut bool
}

func NewPlayer(name string, chips decimal.Decimal) *Player {
	return &Player{Name: name, Chips: chips}
}

func (p *Player) resetForNewRound() {
	p.Bet = decimal.Zero
	p.Hand = Hand{}
	p.Doubled = false
	p.Status = StatusActive
	p.SittingOut = false
}

// Betting reports whether the player has a live stake in the current round.
func (p *Player) Betting() bool {
	return !p.SittingOut && p.Bet.IsPositive()
}

// Broke reports a bankroll of exactly zero, which triggers the top-up offer
// at the next betting round.
func (p *Player) Broke() bool {
	return p.Chips.IsZero()
}
