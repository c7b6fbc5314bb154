// Package cmd implements the CLI application to manage an expense ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/etnz/expense"
)

// Commands is the list of all subcommands. A main package registers them on
// its commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addAccountCmd{},
	&accountsCmd{},
	&updateAccountCmd{},
	&deleteAccountCmd{},

	&expenseCmd{},
	&incomeCmd{},
	&transferCmd{},
	&txCmd{},
	&editCmd{},
	&rmCmd{},

	&summaryCmd{},
	&categoriesCmd{},

	&exportCmd{},
	&importCmd{},
	&configCmd{},
	&suggestCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("file", envOr("EXPENSE_FILE", "expense.json"), "Path to the ledger file")
var currency = flag.String("currency", envOr("EXPENSE_CURRENCY", "USD"), "Display currency, 3-letter code")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// decodeLedger loads the ledger from the app ledger file. A missing file is
// not an error: recording the first transaction creates it.
func decodeLedger() (*expense.Ledger, error) {
	l, err := expense.Load(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.WithField("file", *ledgerFile).Warn("ledger file does not exist, starting from an empty ledger")
		return expense.NewLedger(), nil
	}
	return l, err
}

// encodeLedger saves the ledger back to the app ledger file.
func encodeLedger(l *expense.Ledger) error {
	return l.Save(*ledgerFile)
}

// resolveAccount resolves an account given by id or by display name.
func resolveAccount(l *expense.Ledger, idOrName string) (*expense.Account, error) {
	if acc := l.Account(idOrName); acc != nil {
		return acc, nil
	}
	for acc := range l.Accounts() {
		if strings.EqualFold(acc.Name, idOrName) {
			return &acc, nil
		}
	}
	return nil, fmt.Errorf("no account named %q", idOrName)
}

// resolveCategory resolves a category given by id or by display name.
func resolveCategory(l *expense.Ledger, idOrName string) (*expense.Category, error) {
	if cat := l.Category(idOrName); cat != nil {
		return cat, nil
	}
	for cat := range l.Categories() {
		if strings.EqualFold(cat.Name, idOrName) {
			return &cat, nil
		}
	}
	return nil, fmt.Errorf("no category named %q", idOrName)
}

// parseDate parses a -date flag value, an empty value meaning today.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), nil
	}
	return time.Parse("2006-01-02", s)
}

// parseAmount parses a -amount flag value.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, errors.New("an amount is required")
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return v, nil
}
