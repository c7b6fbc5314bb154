package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/etnz/expense"
	"github.com/etnz/expense/renderer"
)

type summaryCmd struct {
	period string
	date   string
	trend  int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "income, expense and category breakdown for a period" }
func (*summaryCmd) Usage() string {
	return `xp summary [-p <period>] [-d <date>] [-trend <months>]

  Shows income, expense and net for the period containing the date, the
  net worth, and the per-category spending breakdown. With -trend, shows
  the monthly expense totals of the last N months instead.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Predefined period (week, month).")
	f.StringVar(&c.date, "d", "", "A date inside the period, defaults to today.")
	f.IntVar(&c.trend, "trend", 0, "Show the expense trend over the last N months.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.trend > 0 {
		printMarkdown(renderer.Trend(expense.Trend(ledger, c.trend, time.Now()), *currency))
		return subcommands.ExitSuccess
	}

	date, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	period, err := expense.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}

	s := expense.NewSummary(ledger, period.Range(date))
	printMarkdown(renderer.Summary(s, *currency))
	return subcommands.ExitSuccess
}
