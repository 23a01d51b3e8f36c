// Package console wires the rules engine to a terminal session: it collects
// and validates input, renders the table, and sequences betting, dealing,
// turns and payouts into rounds.
package console

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/cardfelt/blackjack/game"
	"github.com/cardfelt/blackjack/ledger"
)

type Config struct {
	LedgerPath         string
	Decks              int
	ReshuffleThreshold int
	TopUp              decimal.Decimal

	// Seed fixes the shoe's shuffle order; 0 seeds from the clock.
	Seed int64
}

// Session owns one sitting at the table, from banner to ledger save. The
// whole game runs on the calling goroutine; the only other goroutine mirrors
// balance updates into the ledger.
type Session struct {
	cfg      Config
	logger   logrus.FieldLogger
	prompter *prompter
	renderer *Renderer
	table    *game.Table
	ledger   *ledger.Ledger
}

func NewSession(cfg Config, logger logrus.FieldLogger, in io.Reader, out io.Writer) *Session {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	interactive := false
	if f, ok := out.(*os.File); ok {
		if stat, err := f.Stat(); err == nil {
			interactive = stat.Mode()&os.ModeCharDevice != 0
		}
	}

	return &Session{
		cfg:      cfg,
		logger:   logger,
		prompter: newPrompter(in, out),
		renderer: NewRenderer(out, interactive),
	}
}

// Run plays the whole session: seat players, loop rounds until nobody can or
// wants to continue, then settle the ledger. EOF on input at any prompt ends
// the session cleanly; balances are still saved.
func (s *Session) Run() error {
	s.renderer.Banner()
	s.ledger = ledger.Load(s.cfg.LedgerPath, s.logger)

	seed := s.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	shoe := game.NewShoe(s.cfg.Decks, rand.New(rand.NewSource(seed)))
	if s.cfg.ReshuffleThreshold > 0 {
		shoe.SetThreshold(s.cfg.ReshuffleThreshold)
	}

	updates := make(chan game.BalanceUpdate)
	done := make(chan struct{})
	go s.mirrorBalances(updates, done)

	s.table = game.NewTable(s.logger, shoe, s.renderer, updates)

	if s.seatPlayers() {
		s.playRounds()
	}

	close(updates)
	<-done

	// the mirror catches every change; this pass just adds players who never
	// placed a single bet
	for _, p := range s.table.Players {
		s.ledger.Set(p.Name, p.Chips)
	}

	err := s.ledger.Save(s.cfg.LedgerPath)
	if err != nil {
		s.logger.WithError(err).Error("ledger save failed")
	} else {
		s.logger.WithField("path", s.cfg.LedgerPath).Info("ledger saved")
	}

	s.renderer.Farewell(s.table.Players)
	return err
}

// mirrorBalances drains chip changes into the in-memory ledger so the final
// save reflects every bet and payout, even for players who sit out the last
// rounds.
func (s *Session) mirrorBalances(updates <-chan game.BalanceUpdate, done chan<- struct{}) {
	for u := range updates {
		s.ledger.Set(u.Name, u.Chips)
	}
	close(done)
}

func (s *Session) seatPlayers() bool {
	count, ok := s.prompter.playerCount()
	if !ok {
		return false
	}
	for seat := 1; seat <= count; seat++ {
		name, ok := s.prompter.playerName(seat)
		if !ok {
			return false
		}
		s.table.Seat(game.NewPlayer(name, s.ledger.Balance(name)))
	}
	return true
}

func (s *Session) playRounds() {
	for {
		s.table.ResetHands()
		if !s.collectBets() {
			return
		}

		s.dealAndPlay()
		s.showResults()

		again, ok := s.prompter.yesNo("\nDo you want to play again? (y/n): ")
		if !ok || !again {
			return
		}
	}
}

// collectBets shows balances, runs top-up offers for broke players and takes
// everyone's stake. It reports false when the round cannot happen: nobody
// bet, or input ran out.
func (s *Session) collectBets() bool {
	s.renderer.Balances(s.table.Players)

	anyone := false
	for _, p := range s.table.Players {
		if p.Broke() {
			accept, ok := s.prompter.yesNo(fmt.Sprintf(
				"%s is out of chips, an anonymous donor is offering %s chips, accept? (y/n): ",
				p.Name, s.cfg.TopUp))
			if !ok {
				return false
			}
			if !accept {
				p.SittingOut = true
				s.renderer.Message(fmt.Sprintf("%s sits this round out.", p.Name))
				continue
			}
			s.table.TopUp(p, s.cfg.TopUp)
			s.renderer.Message(fmt.Sprintf("%s - Chips: %s", p.Name, p.Chips))
		}

		amount, ok := s.prompter.bet(p)
		if !ok {
			return false
		}
		if err := s.table.PlaceBet(p, amount); err != nil {
			// the prompter already bounds the amount, so this is belt and
			// suspenders; skip the round rather than crash it
			s.logger.WithError(err).WithField("player", p.Name).Warn("bet rejected")
			p.SittingOut = true
			continue
		}
		anyone = true
	}
	return anyone
}

func (s *Session) dealAndPlay() {
	fmt.Fprintf(s.prompter.out, "\n%s\n\n", separator)

	s.table.DealInitial()
	s.renderer.TableView(s.table, true)
	s.renderer.CountLine(s.table.Shoe())

	for _, p := range s.table.Players {
		if !p.Betting() {
			continue
		}
		if p.Status == game.StatusBlackjack {
			s.renderer.Message(fmt.Sprintf("%s has blackjack!", p.Name))
			continue
		}
		s.playTurn(p)
	}

	s.renderer.Message("\nDealer's turn")
	s.table.DealerTurn()
}

// playTurn runs one player's hit/stand/double loop until their hand is
// terminal. A rejected double (not enough chips) keeps the turn; an invalid
// action never reaches this far, the prompter re-asks first.
func (s *Session) playTurn(p *game.Player) {
	s.renderer.Turn(p)

	for !p.Status.Terminal() {
		act, ok := s.prompter.action()
		if !ok {
			s.table.Stand(p) // input ran out; stand so the round can settle
			return
		}

		switch act {
		case actionHit:
			s.table.Hit(p)
		case actionStand:
			s.table.Stand(p)
		case actionDouble:
			if _, err := s.table.Double(p); err != nil {
				s.renderer.Message("Not enough chips to double. Please choose another action.")
				continue
			}
			s.renderer.Message(fmt.Sprintf("%s doubles down: bet is now %s", p.Name, p.Bet))
		}

		if p.Status == game.StatusBust {
			s.renderer.Message("Bust!")
		}
		if !p.Status.Terminal() && p.Hand.Value() == 21 {
			// nothing left to decide on 21
			s.table.Stand(p)
		}
	}
}

func (s *Session) showResults() {
	s.renderer.ResultsHeader(s.table)
	for _, p := range s.table.Players {
		if p.Betting() {
			s.table.Resolve(p)
		}
	}
}
