package game

import (
	"slices"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Outcome classifies a resolved player hand against the dealer.
type Outcome int

const (
	OutcomeBust Outcome = iota
	OutcomePush
	OutcomeBlackjack
	OutcomeWinDouble
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBust:
		return "bust"
	case OutcomePush:
		return "push"
	case OutcomeBlackjack:
		return "blackjack"
	case OutcomeWinDouble:
		return "win-double"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "unknown"
	}
}

var two = decimal.NewFromInt(2)

// Resolve compares a finished player hand against the dealer's and applies
// the payout. The rules are checked in order and the first match wins: a
// two-card 21 against a dealer 21 is a push, not a blackjack, and a
// double-down win pays 2x the already-doubled bet, returning four times the
// original stake. The doubled-win rule requires beating the dealer's total
// outright; a doubled hand paid off a dealer bust is a plain win.
func (t *Table) Resolve(p *Player) Outcome {
	value, dealer := p.Hand.Value(), t.Dealer.Value()

	var outcome Outcome
	payout := decimal.Zero
	switch {
	case value > 21:
		outcome = OutcomeBust
	case value == dealer:
		outcome, payout = OutcomePush, p.Bet
	case value == 21 && len(p.Hand.Cards) == 2:
		outcome, payout = OutcomeBlackjack, p.Bet.Mul(two)
	case value > dealer && p.Doubled:
		outcome, payout = OutcomeWinDouble, p.Bet.Mul(two)
	case value > dealer || dealer > 21:
		outcome, payout = OutcomeWin, p.Bet.Mul(two)
	default:
		outcome = OutcomeLose
	}

	if payout.IsPositive() {
		t.updateChips(p, p.Chips.Add(payout))
	}

	t.logger.WithFields(logrus.Fields{
		"round":   t.round,
		"player":  p.Name,
		"outcome": outcome,
		"payout":  payout,
		"chips":   p.Chips,
	}).Info("hand resolved")

	t.emit(HandResolved{
		Round:   t.round,
		Name:    p.Name,
		Cards:   slices.Clone(p.Hand.Cards),
		Value:   value,
		Outcome: outcome,
		Payout:  payout,
		Chips:   p.Chips,
	})
	return outcome
}
