// Command blackjack runs a terminal blackjack table for one or more players
// against the dealer, with chip balances persisted to a local ledger file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"fortio.org/cli"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/cardfelt/blackjack/console"
)

func main() {
	os.Exit(run())
}

func run() int {
	// optional .env next to the binary; absence is fine
	_ = godotenv.Load()

	ledgerPath := flag.String("ledger", envOr("BLACKJACK_LEDGER", "player_data.json"),
		"`path` of the chip ledger file")
	decks := flag.Int("decks", envOrInt("BLACKJACK_DECKS", 8),
		"number of decks in the shoe")
	threshold := flag.Int("reshuffle-under", envOrInt("BLACKJACK_RESHUFFLE_UNDER", 60),
		"reshuffle when fewer than this many `cards` remain")
	topUp := flag.String("topup", envOr("BLACKJACK_TOPUP", "10000"),
		"`chips` offered to a player whose bankroll hits zero")
	logFile := flag.String("log-file", envOr("BLACKJACK_LOG", ""),
		"session log `file`; empty disables logging")
	cli.Main()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "cannot open log file:", err)
			return 1
		}
		defer f.Close()
		logger.SetOutput(f)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	topUpAmount, err := decimal.NewFromString(*topUp)
	if err != nil || !topUpAmount.IsPositive() {
		fmt.Fprintln(os.Stderr, "invalid -topup amount:", *topUp)
		return 1
	}
	if *decks < 1 {
		fmt.Fprintln(os.Stderr, "-decks must be at least 1")
		return 1
	}

	session := console.NewSession(console.Config{
		LedgerPath:         *ledgerPath,
		Decks:              *decks,
		ReshuffleThreshold: *threshold,
		TopUp:              topUpAmount,
	}, logger, os.Stdin, os.Stdout)

	if err := session.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
