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

type editCmd struct {
	id       string
	amount   string
	typ      string
	account  string
	target   string
	category string
	date     string
	note     string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change fields of a recorded transaction" }
func (*editCmd) Usage() string {
	return `xp edit -id <tx-id> [-amount <amount>] [-type <type>] [-account <account>] [-to <account>] [-category <category>] [-date <yyyy-mm-dd>] [-note <text>]

  Updates the given fields of a transaction, leaving the others untouched.
  Balances are recomputed as if the transaction had always carried its new
  values. Changing the type away from TRANSFER drops the target account.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id (required)")
	f.StringVar(&c.amount, "amount", "", "New amount")
	f.StringVar(&c.typ, "type", "", "New type: EXPENSE, INCOME or TRANSFER")
	f.StringVar(&c.account, "account", "", "New source account, id or name")
	f.StringVar(&c.target, "to", "", "New target account for a transfer, id or name")
	f.StringVar(&c.category, "category", "", "New category, id or name")
	f.StringVar(&c.date, "date", "", "New date")
	f.StringVar(&c.note, "note", "", "New note")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var u expense.TransactionUpdate
	if c.amount != "" {
		amount, err := parseAmount(c.amount)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		u.Amount = &amount
	}
	if c.typ != "" {
		typ, err := expense.ParseTransactionType(c.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		u.Type = &typ
	}
	if c.account != "" {
		account, err := resolveAccount(ledger, c.account)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		u.AccountID = &account.ID
	}
	if c.target != "" {
		target, err := resolveAccount(ledger, c.target)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		u.TargetAccountID = &target.ID
	}
	if c.category != "" {
		category, err := resolveCategory(ledger, c.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		u.CategoryID = &category.ID
	}
	if c.date != "" {
		day, err := parseDate(c.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		u.Date = &day
	}
	if c.note != "" {
		u.Note = &c.note
	}

	updated, err := ledger.UpdateTransaction(c.id, u)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := encodeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Transaction(ledger, updated, *currency))
	return subcommands.ExitSuccess
}
