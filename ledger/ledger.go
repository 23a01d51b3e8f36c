// Package ledger persists player bankrolls between sessions as a flat
// name -> balance JSON document. It is the only durable state the game keeps:
// no history, no merging, one wholesale write at clean session end.
package ledger

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// DefaultBalance is the bankroll handed to a player the ledger has never
// seen.
var DefaultBalance = decimal.NewFromInt(10000)

type Ledger struct {
	balances map[string]decimal.Decimal
}

func New() *Ledger {
	return &Ledger{balances: map[string]decimal.Decimal{}}
}

// Load reads the ledger file. A missing file simply means nobody has played
// yet, and a malformed one is treated the same way rather than refusing to
// start; either way play begins from an empty ledger.
func Load(path string, logger logrus.FieldLogger) *Ledger {
	l := New()

	data, err := os.ReadFile(path)
	if err != nil {
		return l
	}

	if err := json.Unmarshal(data, &l.balances); err != nil {
		if logger != nil {
			logger.WithError(err).WithField("path", path).Warn("ledger unreadable, starting fresh")
		}
		l.balances = map[string]decimal.Decimal{}
	}
	return l
}

// Balance returns the stored bankroll, or the newcomer default for a name
// the ledger does not know.
func (l *Ledger) Balance(name string) decimal.Decimal {
	if chips, ok := l.balances[name]; ok {
		return chips
	}
	return DefaultBalance
}

func (l *Ledger) Set(name string, chips decimal.Decimal) {
	l.balances[name] = chips
}

func (l *Ledger) Len() int {
	return len(l.balances)
}

// Save overwrites the ledger wholesale. The document is written to a
// temporary file in the same directory and renamed into place so a crash
// mid-write cannot corrupt the previous ledger.
func (l *Ledger) Save(path string) error {
	data, err := json.Marshal(l.balances)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".ledger-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
