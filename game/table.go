package game

import (
	"errors"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// DealerName is the display name carried by the dealer's events.
const DealerName = "Dealer"

var (
	// ErrInvalidBet rejects a stake that is not positive or not covered by
	// the bankroll.
	ErrInvalidBet = errors.New("invalid bet")

	// ErrInsufficientChips rejects a double-down the bankroll cannot cover.
	// The turn is not consumed; the player picks another action.
	ErrInsufficientChips = errors.New("insufficient chips")
)

// Table drives rounds of blackjack: betting, the initial deal, player
// actions, the dealer's fixed policy and payout resolution. It owns the shoe
// and every hand exclusively; nothing here is safe for concurrent use.
type Table struct {
	Dealer  Hand
	Players []*Player

	logger         logrus.FieldLogger
	shoe           *Shoe
	observer       Observer
	balanceUpdates chan<- BalanceUpdate
	round          uuid.UUID
}

// NewTable seats an empty table around a shoe. The observer and the balance
// channel may be nil; events and updates are then dropped.
func NewTable(logger logrus.FieldLogger, shoe *Shoe, observer Observer, balanceUpdates chan<- BalanceUpdate) *Table {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	t := &Table{logger: logger, shoe: shoe, observer: observer, balanceUpdates: balanceUpdates}
	shoe.OnReshuffle = func(remaining int) {
		t.logger.WithField("remaining", remaining).Info("shoe reshuffled")
		t.emit(ShoeReshuffled{Remaining: remaining})
	}
	return t
}

func (t *Table) Seat(p *Player) {
	t.Players = append(t.Players, p)
}

func (t *Table) Shoe() *Shoe {
	return t.shoe
}

// Round identifies the hand currently in play.
func (t *Table) Round() uuid.UUID {
	return t.round
}

// ResetHands starts a fresh round under a new round id: hands cleared, bets
// zeroed, statuses back to active. Chips carry over untouched.
func (t *Table) ResetHands() {
	t.round = uuid.New()
	t.Dealer = Hand{}
	for _, p := range t.Players {
		p.resetForNewRound()
	}
}

func (t *Table) emit(e Event) {
	if t.observer != nil {
		t.observer.Handle(e)
	}
}

// updateChips is the single path for chip changes; every change is mirrored
// out so the ledger tracks the table.
func (t *Table) updateChips(p *Player, chips decimal.Decimal) {
	p.Chips = chips
	if t.balanceUpdates != nil {
		t.balanceUpdates <- BalanceUpdate{Name: p.Name, Chips: chips}
	}
}

// PlaceBet stakes amount on the current round. The stake leaves the bankroll
// immediately and only comes back through a payout.
func (t *Table) PlaceBet(p *Player, amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(p.Chips) {
		return ErrInvalidBet
	}

	p.Bet = amount
	t.updateChips(p, p.Chips.Sub(amount))
	t.logger.WithFields(logrus.Fields{"round": t.round, "player": p.Name, "bet": amount}).Info("bet placed")
	return nil
}

// TopUp credits a broke player who accepted the donor's offer.
func (t *Table) TopUp(p *Player, amount decimal.Decimal) {
	t.updateChips(p, p.Chips.Add(amount))
	t.logger.WithFields(logrus.Fields{"player": p.Name, "amount": amount}).Info("top-up accepted")
}

// DealInitial deals two cards to every betting player and two to the dealer,
// one at a time around the table. The dealer's second card is the hole card.
// A two-card 21 is an immediate blackjack; that player takes no turn.
func (t *Table) DealInitial() {
	for range 2 {
		for _, p := range t.Players {
			if p.Betting() {
				t.dealTo(p)
			}
		}
		t.dealDealer(len(t.Dealer.Cards) == 1)
	}

	for _, p := range t.Players {
		if p.Betting() && p.Hand.IsBlackjack() {
			p.Status = StatusBlackjack
		}
	}
}

func (t *Table) dealTo(p *Player) Card {
	card := t.shoe.Draw()
	p.Hand.Cards = append(p.Hand.Cards, card)
	t.emit(CardDealt{
		Round: t.round,
		Name:  p.Name,
		Card:  card,
		Cards: slices.Clone(p.Hand.Cards),
		Value: p.Hand.Value(),
	})
	return card
}

func (t *Table) dealDealer(hole bool) {
	card := t.shoe.Draw()
	t.Dealer.Cards = append(t.Dealer.Cards, card)

	value := t.Dealer.Value()
	if hole {
		// only the upcard counts toward the shown value
		value = Hand{Cards: t.Dealer.Cards[:1]}.Value()
	}
	t.emit(CardDealt{
		Round: t.round,
		Name:  DealerName,
		Card:  card,
		Cards: slices.Clone(t.Dealer.Cards),
		Hole:  hole,
		Value: value,
	})
}

// Hit draws one card for an active hand. Going over 21 busts it. Reaching 21
// with three or more cards leaves the hand active: only a two-card 21 is a
// natural.
func (t *Table) Hit(p *Player) Card {
	card := t.dealTo(p)
	if p.Hand.Busted() {
		p.Status = StatusBust
	}
	t.logger.WithFields(logrus.Fields{"round": t.round, "player": p.Name, "card": card, "value": p.Hand.Value()}).Debug("hit")
	return card
}

// Stand ends the turn with no card drawn.
func (t *Table) Stand(p *Player) {
	p.Status = StatusStand
	t.logger.WithFields(logrus.Fields{"round": t.round, "player": p.Name, "value": p.Hand.Value()}).Debug("stand")
}

// Double doubles the stake in exchange for exactly one more card and no
// further decisions. The extra stake leaves the bankroll immediately and the
// hand is terminal whatever the card brings, a bust included. Returns
// ErrInsufficientChips when the bankroll cannot cover the second stake.
func (t *Table) Double(p *Player) (Card, error) {
	if p.Bet.GreaterThan(p.Chips) {
		return Card{}, ErrInsufficientChips
	}

	t.updateChips(p, p.Chips.Sub(p.Bet))
	p.Bet = p.Bet.Add(p.Bet)
	p.Doubled = true

	card := t.dealTo(p)
	p.Status = StatusDouble
	t.logger.WithFields(logrus.Fields{"round": t.round, "player": p.Name, "bet": p.Bet, "value": p.Hand.Value()}).Debug("double down")
	return card, nil
}

// DealerTurn reveals the hole card and runs the fixed house policy: hit on
// anything under 17, stand on 17 through 21. It is only called once every
// player hand is terminal.
func (t *Table) DealerTurn() {
	if len(t.Dealer.Cards) >= 2 {
		t.emit(HoleRevealed{Card: t.Dealer.Cards[1], Value: t.Dealer.Value()})
	}

	for {
		value := t.Dealer.Value()
		switch {
		case value > 21:
			t.logger.WithFields(logrus.Fields{"round": t.round, "value": value}).Info("dealer busts")
			t.emit(DealerBusted{Value: value})
			return
		case value >= 17:
			t.logger.WithFields(logrus.Fields{"round": t.round, "value": value}).Info("dealer stands")
			t.emit(DealerStood{Value: value})
			return
		}
		t.dealDealer(false)
	}
}
