package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list all categories" }
func (*categoriesCmd) Usage() string {
	return `xp categories

  Lists all categories grouped by spending group.
`
}

func (*categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Categories")
	var rows [][]string
	for cat := range ledger.Categories() {
		rows = append(rows, []string{cat.ID, cat.Name, cat.Group, string(cat.Type)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Id", "Name", "Group", "Type"},
		Rows:   rows,
	})
	printMarkdown(doc.String())
	return subcommands.ExitSuccess
}
