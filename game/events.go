package game

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceUpdate is sent whenever a player's chip total changes, so the
// session can mirror bankrolls into the ledger as they move.
type BalanceUpdate struct {
	Name  string
	Chips decimal.Decimal
}

// Event is a structured notification out of the rules engine. The engine
// never renders; the presentation layer subscribes through an Observer.
type Event interface {
	event()
}

// Observer receives table events as they happen. Implementations render or
// record; they must not mutate game state and should not block beyond their
// own drawing time.
type Observer interface {
	Handle(Event)
}

// CardDealt reports one card landing in a hand. Cards is a snapshot of the
// receiving hand after the deal. For the dealer's hole card Hole is true and
// Value covers only the visible cards.
type CardDealt struct {
	Round uuid.UUID
	Name  string
	Card  Card
	Cards []Card
	Hole  bool
	Value int
}

// ShoeReshuffled reports that the shoe ran low and was replaced; the running
// count is back to zero.
type ShoeReshuffled struct {
	Remaining int
}

// HoleRevealed reports the dealer turning over the hole card.
type HoleRevealed struct {
	Card  Card
	Value int
}

// DealerStood reports the dealer finishing on 17 through 21.
type DealerStood struct {
	Value int
}

// DealerBusted reports the dealer going over 21.
type DealerBusted struct {
	Value int
}

// HandResolved reports a player's final outcome and any payout applied.
type HandResolved struct {
	Round   uuid.UUID
	Name    string
	Cards   []Card
	Value   int
	Outcome Outcome
	Payout  decimal.Decimal
	Chips   decimal.Decimal
}

func (CardDealt) event()      {}
func (ShoeReshuffled) event() {}
func (HoleRevealed) event()   {}
func (DealerStood) event()    {}
func (DealerBusted) event()   {}
func (HandResolved) event()   {}
