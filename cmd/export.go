package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/etnz/expense"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger for backup or spreadsheets" }
func (*exportCmd) Usage() string {
	return `xp export [-format <json|csv>] [-o <file>]

  Exports the ledger. The json format is the full snapshot and can be
  imported back; the csv format is the transaction log for spreadsheets.
  Without -o, json goes to a date-stamped file and csv to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "Export format: json or csv.")
	f.StringVar(&c.output, "o", "", "Output file, defaults to a date-stamped file (json) or stdout (csv).")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch c.format {
	case "json":
		output := c.output
		if output == "" {
			output = expense.ExportFilename(time.Now())
		}
		file, err := os.Create(output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating export file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		if err := expense.Export(file, ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing export: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Exported ledger to %s\n", output)

	case "csv":
		out := os.Stdout
		if c.output != "" {
			file, err := os.Create(c.output)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating export file: %v\n", err)
				return subcommands.ExitFailure
			}
			defer file.Close()
			out = file
		}
		if err := expense.ExportCSV(out, ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing export: %v\n", err)
			return subcommands.ExitFailure
		}

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, expected json or csv.\n", c.format)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
