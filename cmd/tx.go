package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/expense"
	"github.com/etnz/expense/renderer"
)

type txCmd struct {
	period   string
	start    string
	date     string
	account  string
	category string
	head     int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, newest first" }
func (*txCmd) Usage() string {
	return `xp tx [-p <period> | -s <start_date>] [-d <end_date>] [-account <account>] [-category <category>] [-head <n>]

  Lists transactions from the ledger, with options for filtering and
  limiting the output. Without a range flag the whole log is listed.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Predefined period (week, month).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "", "The end date for the range, defaults to today.")
	f.StringVar(&c.account, "account", "", "Only transactions touching this account.")
	f.StringVar(&c.category, "category", "", "Only transactions in this category.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var filters []func(expense.Transaction) bool

	if c.period != "" || c.start != "" {
		end, err := parseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
		var r expense.Range
		if c.start != "" {
			start, err := parseDate(c.start)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
				return subcommands.ExitUsageError
			}
			r = expense.NewRange(start, end)
		} else {
			period, err := expense.ParsePeriod(c.period)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
				return subcommands.ExitUsageError
			}
			r = period.Range(end)
		}
		filters = append(filters, expense.ByRange(r))
	}
	if c.account != "" {
		account, err := resolveAccount(ledger, c.account)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		filters = append(filters, expense.ByAccount(account.ID))
	}
	if c.category != "" {
		category, err := resolveCategory(ledger, c.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		filters = append(filters, expense.ByCategory(category.ID))
	}

	// Transactions accepts on any matching filter; the command wants every
	// criterion to hold, so they are folded into one predicate.
	filter := expense.AcceptAll
	if len(filters) > 0 {
		filter = func(tx expense.Transaction) bool {
			for _, f := range filters {
				if !f(tx) {
					return false
				}
			}
			return true
		}
	}

	var transactions []expense.Transaction
	for _, tx := range ledger.Transactions(filter) {
		transactions = append(transactions, tx)
		if c.head > 0 && len(transactions) == c.head {
			break
		}
	}

	printMarkdown(renderer.Transactions(ledger, transactions, *currency))
	return subcommands.ExitSuccess
}
