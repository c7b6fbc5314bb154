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

type addAccountCmd struct {
	name       string
	typ        string
	balance    string
	color      string
	limit      string
	billingDay int
	dueDay     int
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "add a new account to the ledger" }
func (*addAccountCmd) Usage() string {
	return `xp add-account -name <name> -type <BANK|CREDIT|CASH> [-balance <amount>] [-color <hex>] [-limit <amount> -billing-day <day> -due-day <day>]

  Adds a new account with its opening balance:
  - name: The display name of the account (e.g., "Checking"). Required.
  - type: BANK, CREDIT or CASH. Required.
  - balance: The opening balance. Defaults to 0.

  Credit accounts may also carry a limit, a billing day and a payment due day.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account display name (required)")
	f.StringVar(&c.typ, "type", "", "Account type: BANK, CREDIT or CASH (required)")
	f.StringVar(&c.balance, "balance", "0", "Opening balance")
	f.StringVar(&c.color, "color", "#6366f1", "Display color, hex")
	f.StringVar(&c.limit, "limit", "", "Credit limit (credit accounts)")
	f.IntVar(&c.billingDay, "billing-day", 0, "Statement billing day of month (credit accounts)")
	f.IntVar(&c.dueDay, "due-day", 0, "Payment due day of month (credit accounts)")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := expense.ParseAccountType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	balance, err := parseAmount(c.balance)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	account := expense.Account{
		Name:       c.name,
		Type:       typ,
		Balance:    balance,
		Color:      c.color,
		BillingDay: c.billingDay,
		DueDay:     c.dueDay,
	}
	if c.limit != "" {
		limit, err := decimal.NewFromString(c.limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid limit %q: %v\n", c.limit, err)
			return subcommands.ExitUsageError
		}
		account.Limit = &limit
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	created, err := ledger.AddAccount(account)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := encodeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created account %q (%s)\n", created.Name, created.ID)
	return subcommands.ExitSuccess
}
