package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"fortio.org/terminal/ansipixels"

	"github.com/cardfelt/blackjack/game"
)

// Card art geometry.
const (
	cardWidth  = 11
	cardHeight = 7
)

const separator = "──────────────────────────────────────────────────"

// Typewriter and dealing delays, suppressed off-TTY.
const (
	typeDelay = 6 * time.Millisecond
	dealDelay = 280 * time.Millisecond
)

var banner = []string{
	"██████╗ ██╗      █████╗  ██████╗██╗  ██╗     ██╗ █████╗  ██████╗██╗  ██╗",
	"██╔══██╗██║     ██╔══██╗██╔════╝██║ ██╔╝     ██║██╔══██╗██╔════╝██║ ██╔╝",
	"██████╔╝██║     ███████║██║     █████╔╝      ██║███████║██║     █████╔╝ ",
	"██╔══██╗██║     ██╔══██║██║     ██╔═██╗ ██   ██║██╔══██║██║     ██╔═██╗ ",
	"███████║███████╗██║  ██║╚██████╗██║  ██╗╚█████╔╝██║  ██║╚██████╗██║  ██╗",
	"╚══════╝╚══════╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝ ╚════╝ ╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝",
}

// Renderer draws the session to the terminal. It implements game.Observer,
// so engine events print as they happen; nothing here feeds back into the
// rules.
type Renderer struct {
	out         io.Writer
	interactive bool
}

func NewRenderer(out io.Writer, interactive bool) *Renderer {
	return &Renderer{out: out, interactive: interactive}
}

func (r *Renderer) pause(d time.Duration) {
	if r.interactive {
		time.Sleep(d)
	}
}

// typef prints with a typewriter reveal when on a live terminal.
func (r *Renderer) typef(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if !r.interactive {
		fmt.Fprint(r.out, text)
		return
	}
	for _, ch := range text {
		fmt.Fprint(r.out, string(ch))
		time.Sleep(typeDelay)
	}
}

// Handle renders engine events as play-by-play lines.
func (r *Renderer) Handle(e game.Event) {
	switch e := e.(type) {
	case game.CardDealt:
		r.cardDealt(e)
	case game.ShoeReshuffled:
		r.typef("%sThe shoe is running low: shuffling in a fresh one. The count starts over.%s\n",
			ansipixels.Cyan, ansipixels.Reset)
	case game.HoleRevealed:
		r.typef("%s reveals the face-down card: %s (%d)\n", game.DealerName, colorCard(e.Card), e.Value)
		r.pause(dealDelay)
	case game.DealerStood:
		r.typef("%s stands (%d)\n", game.DealerName, e.Value)
	case game.DealerBusted:
		r.typef("%s%s busts! (%d)%s\n", ansipixels.Green, game.DealerName, e.Value, ansipixels.Reset)
	case game.HandResolved:
		r.handResolved(e)
	}
}

func (r *Renderer) cardDealt(e game.CardDealt) {
	switch {
	case e.Hole:
		r.typef("%s has %s and a face-down card\n", e.Name, colorCard(e.Cards[0]))
		r.pause(dealDelay)
	case len(e.Cards) == 2:
		r.typef("%s has %s and %s (%d)\n", e.Name, colorCard(e.Cards[0]), colorCard(e.Cards[1]), e.Value)
		r.pause(dealDelay)
	case len(e.Cards) > 2:
		r.typef("%s draws %s (%d)\n", e.Name, colorCard(e.Card), e.Value)
		r.pause(dealDelay)
	}
}

func (r *Renderer) handResolved(e game.HandResolved) {
	hand := handString(e.Cards)
	switch e.Outcome {
	case game.OutcomeBust:
		r.typef("%s: %s (%d)  %sBust!%s\n", e.Name, hand, e.Value, ansipixels.Red, ansipixels.Reset)
	case game.OutcomePush:
		r.typef("%s: %s (%d)  %sPush! Bet returned.%s\n", e.Name, hand, e.Value, ansipixels.Cyan, ansipixels.Reset)
	case game.OutcomeBlackjack:
		r.typef("%s: %s (%d)  %sBlackjack! +%s%s\n", e.Name, hand, e.Value, ansipixels.Green, e.Payout, ansipixels.Reset)
	case game.OutcomeWinDouble:
		r.typef("%s: %s (%d)  %sWon with a double! +%s%s\n", e.Name, hand, e.Value, ansipixels.Green, e.Payout, ansipixels.Reset)
	case game.OutcomeWin:
		r.typef("%s: %s (%d)  %sWin! +%s%s\n", e.Name, hand, e.Value, ansipixels.Green, e.Payout, ansipixels.Reset)
	case game.OutcomeLose:
		r.typef("%s: %s (%d)  %sLose!%s\n", e.Name, hand, e.Value, ansipixels.Red, ansipixels.Reset)
	}
	fmt.Fprintf(r.out, "%s now has %s chips\n\n", e.Name, e.Chips)
}

// Banner plays the title screen, one row at a time on a live terminal.
func (r *Renderer) Banner() {
	if r.interactive {
		fmt.Fprint(r.out, "\033[2J\033[H")
	}
	for _, line := range banner {
		fmt.Fprintf(r.out, "%s%s%s\n", ansipixels.Green, line, ansipixels.Reset)
		r.pause(30 * time.Millisecond)
	}
	fmt.Fprintf(r.out, "\n%sInteractive ASCII Blackjack%s\n\n", ansipixels.Cyan, ansipixels.Reset)
}

// Balances prints the between-rounds chip summary.
func (r *Renderer) Balances(players []*game.Player) {
	fmt.Fprintf(r.out, "\n%s\n\nCurrent Chip Balances:\n", separator)
	for _, p := range players {
		if !p.Broke() {
			fmt.Fprintf(r.out, "%s - Chips: %s\n", p.Name, p.Chips)
		}
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) Message(text string) {
	r.typef("%s\n", text)
}

// Turn announces whose turn it is and shows their cards.
func (r *Renderer) Turn(p *game.Player) {
	fmt.Fprintf(r.out, "\n%s%s's turn%s (%d)\n", ansipixels.Green, p.Name, ansipixels.Reset, p.Hand.Value())
	r.art(p.Hand.Cards, false)
}

// TableView draws the whole table: dealer first, then every live hand.
func (r *Renderer) TableView(t *game.Table, hideHole bool) {
	fmt.Fprintf(r.out, "\n%s%s%s\n", ansipixels.Red, game.DealerName, ansipixels.Reset)
	r.art(t.Dealer.Cards, hideHole)
	if !hideHole {
		fmt.Fprintf(r.out, "%sValue: %d%s\n", ansipixels.Cyan, t.Dealer.Value(), ansipixels.Reset)
	}
	fmt.Fprintln(r.out, separator)

	for _, p := range t.Players {
		if !p.Betting() {
			continue
		}
		fmt.Fprintf(r.out, "%s  |  Chips: %s  Bet: %s\n", p.Name, p.Chips, p.Bet)
		r.art(p.Hand.Cards, false)
		fmt.Fprintf(r.out, "%sValue: %d%s", ansipixels.Cyan, p.Hand.Value(), ansipixels.Reset)
		if p.Status.Terminal() {
			fmt.Fprintf(r.out, "  %s", strings.ToUpper(p.Status.String()))
		}
		fmt.Fprint(r.out, "\n\n")
	}
}

// CountLine shows the informational running count and shoe penetration.
func (r *Renderer) CountLine(s *game.Shoe) {
	fmt.Fprintf(r.out, "%sRunning count: %+d  |  %d cards left in the shoe%s\n",
		ansipixels.Blue, s.RunningCount(), s.Len(), ansipixels.Reset)
}

// ResultsHeader opens the results section with the dealer's full hand.
func (r *Renderer) ResultsHeader(t *game.Table) {
	fmt.Fprintf(r.out, "\n%s\n\nResults:\n\n", separator)
	fmt.Fprintf(r.out, "%s's Hand: %s  (%d)\n", game.DealerName, handString(t.Dealer.Cards), t.Dealer.Value())
	r.art(t.Dealer.Cards, false)
	fmt.Fprintln(r.out)
}

// Farewell prints the final balances on the way out.
func (r *Renderer) Farewell(players []*game.Player) {
	fmt.Fprintf(r.out, "\n%s\n\nFinal Chip Balances:\n", separator)
	for _, p := range players {
		fmt.Fprintf(r.out, "%s - Chips: %s\n", p.Name, p.Chips)
	}
	fmt.Fprintf(r.out, "\n%s\n\nThank you for playing!\n\n%s\n", separator, separator)
}

func (r *Renderer) art(cards []game.Card, hideHole bool) {
	for _, row := range handArt(cards, hideHole) {
		fmt.Fprintln(r.out, row)
	}
}

func colorCard(c game.Card) string {
	color := ansipixels.Black
	if c.Suit.Red() {
		color = ansipixels.Red
	}
	return c.Rank.String() + color + c.Suit.String() + ansipixels.Reset
}

func handString(cards []game.Card) string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = colorCard(c)
	}
	return strings.Join(tokens, " ")
}

// cardLines renders one card as fixed-size ASCII rows. Hidden cards get a
// patterned back.
func cardLines(card game.Card, hidden bool) []string {
	inner := cardWidth - 2
	top := "┌" + strings.Repeat("─", inner) + "┐"
	bottom := "└" + strings.Repeat("─", inner) + "┘"

	if hidden {
		lines := []string{top}
		for i := 0; i < cardHeight-2; i++ {
			pattern := "░░▒▒"
			if i%2 == 1 {
				pattern = "▒▒░░"
			}
			fill := []rune(strings.Repeat(pattern, inner/4+1))[:inner]
			lines = append(lines, "│"+ansipixels.Blue+string(fill)+ansipixels.Reset+"│")
		}
		return append(lines, bottom)
	}

	rank := card.Rank.String()
	color := ansipixels.Black
	if card.Suit.Red() {
		color = ansipixels.Red
	}

	leftPad := (inner - 1) / 2
	suitLine := "│" + strings.Repeat(" ", leftPad) + color + card.Suit.String() + ansipixels.Reset +
		strings.Repeat(" ", inner-1-leftPad) + "│"
	blank := fmt.Sprintf("│%*s│", inner, "")

	return []string{
		top,
		fmt.Sprintf("│%-*s│", inner, rank),
		blank,
		suitLine,
		blank,
		fmt.Sprintf("│%*s│", inner, rank),
		bottom,
	}
}

// handArt stitches the cards of one hand side by side. hideHole hides the
// second card, the dealer's face-down one.
func handArt(cards []game.Card, hideHole bool) []string {
	if len(cards) == 0 {
		return nil
	}
	rows := make([]string, cardHeight)
	for i, c := range cards {
		lines := cardLines(c, hideHole && i == 1)
		for row := range rows {
			if i > 0 {
				rows[row] += " "
			}
			rows[row] += lines[row]
		}
	}
	return rows
}
