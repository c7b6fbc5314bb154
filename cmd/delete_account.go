package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/expense"
)

type deleteAccountCmd struct {
	id string
}

func (*deleteAccountCmd) Name() string     { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string { return "delete an account with no transactions" }
func (*deleteAccountCmd) Usage() string {
	return `xp delete-account -id <account>

  Deletes an account. The deletion is refused while transactions still
  reference the account, delete or move those first.
`
}

func (c *deleteAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account id or name (required)")
}

func (c *deleteAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := ledger.DeleteAccount(account.ID); err != nil {
		if errors.Is(err, expense.ErrReferentialIntegrity) {
			fmt.Fprintf(os.Stderr, "Error: account %q still has transactions, delete or move them first.\n", account.Name)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := encodeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted account %q\n", account.Name)
	return subcommands.ExitSuccess
}
