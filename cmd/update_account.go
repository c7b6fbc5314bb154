package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/etnz/expense"
)

type updateAccountCmd struct {
	id         string
	name       string
	typ        string
	color      string
	limit      string
	billingDay int
	dueDay     int
}

func (*updateAccountCmd) Name() string     { return "update-account" }
func (*updateAccountCmd) Synopsis() string { return "change an account's name, type or details" }
func (*updateAccountCmd) Usage() string {
	return `xp update-account -id <account> [-name <name>] [-type <type>] [-color <hex>] [-limit <amount>] [-billing-day <day>] [-due-day <day>]

  Updates the given fields of an account, leaving the others untouched.
  The balance is not a field you can set: it always reflects the
  transaction log.
`
}

func (c *updateAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account id or name (required)")
	f.StringVar(&c.name, "name", "", "New display name")
	f.StringVar(&c.typ, "type", "", "New type: BANK, CREDIT or CASH")
	f.StringVar(&c.color, "color", "", "New display color, hex")
	f.StringVar(&c.limit, "limit", "", "New credit limit")
	f.IntVar(&c.billingDay, "billing-day", 0, "New statement billing day")
	f.IntVar(&c.dueDay, "due-day", 0, "New payment due day")
}

func (c *updateAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	account, err := resolveAccount(ledger, c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var u expense.AccountUpdate
	if c.name != "" {
		u.Name = &c.name
	}
	if c.typ != "" {
		typ, err := expense.ParseAccountType(c.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		u.Type = &typ
	}
	if c.color != "" {
		u.Color = &c.color
	}
	if c.limit != "" {
		limit, err := decimal.NewFromString(c.limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid limit %q: %v\n", c.limit, err)
			return subcommands.ExitUsageError
		}
		u.Limit = &limit
	}
	if c.billingDay != 0 {
		u.BillingDay = &c.billingDay
	}
	if c.dueDay != 0 {
		u.DueDay = &c.dueDay
	}

	if err := ledger.UpdateAccount(account.ID, u); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := encodeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated account %s\n", account.ID)
	return subcommands.ExitSuccess
}
