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

// this file implements the three recording commands: expense, income and
// transfer. They share the flag parsing and the add-then-save flow; only the
// transaction they build differs.

type expenseCmd struct {
	amount   string
	account  string
	category string
	date     string
	note     string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record money spent from an account" }
func (*expenseCmd) Usage() string {
	return `xp expense -amount <amount> -account <account> -category <category> [-date <yyyy-mm-dd>] [-note <text>]

  Records an expense and debits the account:
  - amount: how much was spent. Required, positive.
  - account: the account the money left, by id or name. Defaults to the
    last account used.
  - category: what it was spent on, by id or name. Required.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount spent (required)")
	f.StringVar(&c.account, "account", "", "Source account, id or name")
	f.StringVar(&c.category, "category", "", "Category, id or name (required)")
	f.StringVar(&c.date, "date", "", "Date, defaults to today")
	f.StringVar(&c.note, "note", "", "Free-form note")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return record(func(l *expense.Ledger) (expense.Transaction, error) {
		amount, err := parseAmount(c.amount)
		if err != nil {
			return expense.Transaction{}, err
		}
		day, err := parseDate(c.date)
		if err != nil {
			return expense.Transaction{}, err
		}
		account, err := defaultAccount(l, c.account)
		if err != nil {
			return expense.Transaction{}, err
		}
		category, err := resolveCategory(l, c.category)
		if err != nil {
			return expense.Transaction{}, err
		}
		return expense.NewExpense(day, amount, account.ID, category.ID, c.note), nil
	})
}

type incomeCmd struct {
	amount   string
	account  string
	category string
	date     string
	note     string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record money received into an account" }
func (*incomeCmd) Usage() string {
	return `xp income -amount <amount> -account <account> -category <category> [-date <yyyy-mm-dd>] [-note <text>]

  Records an income and credits the account.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount received (required)")
	f.StringVar(&c.account, "account", "", "Target account, id or name")
	f.StringVar(&c.category, "category", "", "Category, id or name (required)")
	f.StringVar(&c.date, "date", "", "Date, defaults to today")
	f.StringVar(&c.note, "note", "", "Free-form note")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return record(func(l *expense.Ledger) (expense.Transaction, error) {
		amount, err := parseAmount(c.amount)
		if err != nil {
			return expense.Transaction{}, err
		}
		day, err := parseDate(c.date)
		if err != nil {
			return expense.Transaction{}, err
		}
		account, err := defaultAccount(l, c.account)
		if err != nil {
			return expense.Transaction{}, err
		}
		category, err := resolveCategory(l, c.category)
		if err != nil {
			return expense.Transaction{}, err
		}
		return expense.NewIncome(day, amount, account.ID, category.ID, c.note), nil
	})
}

type transferCmd struct {
	amount string
	from   string
	to     string
	date   string
	note   string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between two accounts" }
func (*transferCmd) Usage() string {
	return `xp transfer -amount <amount> -from <account> -to <account> [-date <yyyy-mm-dd>] [-note <text>]

  Moves money between two of your accounts. The net worth is unchanged:
  the source is debited and the target credited in one atomic step.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount to move (required)")
	f.StringVar(&c.from, "from", "", "Source account, id or name (required)")
	f.StringVar(&c.to, "to", "", "Target account, id or name (required)")
	f.StringVar(&c.date, "date", "", "Date, defaults to today")
	f.StringVar(&c.note, "note", "", "Free-form note")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return record(func(l *expense.Ledger) (expense.Transaction, error) {
		amount, err := parseAmount(c.amount)
		if err != nil {
			return expense.Transaction{}, err
		}
		day, err := parseDate(c.date)
		if err != nil {
			return expense.Transaction{}, err
		}
		from, err := resolveAccount(l, c.from)
		if err != nil {
			return expense.Transaction{}, err
		}
		to, err := resolveAccount(l, c.to)
		if err != nil {
			return expense.Transaction{}, err
		}
		return expense.NewTransfer(day, amount, from.ID, to.ID, c.note), nil
	})
}

// defaultAccount resolves the account flag, falling back to the last account
// used when the flag is empty.
func defaultAccount(l *expense.Ledger, idOrName string) (*expense.Account, error) {
	if idOrName == "" {
		last := l.Preferences().LastAccountID
		if acc := l.Account(last); acc != nil {
			return acc, nil
		}
		return nil, fmt.Errorf("no account given and no last used account")
	}
	return resolveAccount(l, idOrName)
}

// record runs the shared flow of the three recording commands: load, build
// the transaction, add it, remember the account and save.
func record(build func(*expense.Ledger) (expense.Transaction, error)) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	tx, err := build(ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	added, err := ledger.AddTransaction(tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	ledger.RecordLastUsedAccount(added.AccountID)

	if err := encodeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(renderer.Transaction(ledger, added, *currency))
	return subcommands.ExitSuccess
}
