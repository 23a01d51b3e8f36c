package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cardfelt/blackjack/game"
)

type action int

const (
	actionHit action = iota
	actionStand
	actionDouble
)

// prompter runs the blocking read-validate-reprompt loops. Validation lives
// here, not in the reader: bad input never escapes as an error value, it
// just asks again.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// readLine blocks for one line of input. ok is false once input is
// exhausted, which ends the session cleanly.
func (p *prompter) readLine(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

func (p *prompter) playerCount() (int, bool) {
	for {
		text, ok := p.readLine("Enter the number of players: ")
		if !ok {
			return 0, false
		}
		count, err := strconv.Atoi(text)
		if err != nil || count < 1 {
			fmt.Fprintln(p.out, "Invalid number of players. Please try again.")
			continue
		}
		return count, true
	}
}

func (p *prompter) playerName(seat int) (string, bool) {
	for {
		name, ok := p.readLine(fmt.Sprintf("Enter player %d's name: ", seat))
		if !ok {
			return "", false
		}
		if name == "" {
			fmt.Fprintln(p.out, "A name cannot be empty. Please try again.")
			continue
		}
		return name, true
	}
}

func (p *prompter) bet(player *game.Player) (decimal.Decimal, bool) {
	for {
		text, ok := p.readLine(fmt.Sprintf("%s, enter your bet amount: ", player.Name))
		if !ok {
			return decimal.Zero, false
		}
		amount, err := decimal.NewFromString(text)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter a valid bet amount.")
			continue
		}
		if !amount.IsPositive() || amount.GreaterThan(player.Chips) {
			fmt.Fprintln(p.out, "Invalid bet amount. Please enter a valid bet.")
			continue
		}
		return amount, true
	}
}

func (p *prompter) action() (action, bool) {
	for {
		text, ok := p.readLine("Choose an action: (H)it, (S)tand, or (D)ouble: ")
		if !ok {
			return actionStand, false
		}
		switch strings.ToLower(text) {
		case "h", "hit":
			return actionHit, true
		case "s", "stand":
			return actionStand, true
		case "d", "double":
			return actionDouble, true
		}
		fmt.Fprintln(p.out, "Invalid action. Please try again.")
	}
}

func (p *prompter) yesNo(question string) (answer, ok bool) {
	for {
		text, ok := p.readLine(question)
		if !ok {
			return false, false
		}
		switch strings.ToLower(text) {
		case "y", "yes":
			return true, true
		case "n", "no":
			return false, true
		}
		fmt.Fprintln(p.out, "Invalid input. Please enter 'y' or 'n'.")
	}
}
