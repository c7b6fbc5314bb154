package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/etnz/expense"
)

type suggestCmd struct {
	model string
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "suggest a category for an expense description" }
func (*suggestCmd) Usage() string {
	return `xp suggest <description>

  Asks Gemini which category fits an expense description, e.g.:

  $ xp suggest "monthly pass for the metro"
  Public Transit

  Requires the GEMINI_API_KEY environment variable.
`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Gemini model to ask.")
}

func (c *suggestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a description is required.")
		return subcommands.ExitUsageError
	}
	description := strings.Join(f.Args(), " ")

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	chat, err := client.Chats.Create(ctx, c.model, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
You classify personal expenses. Answer with exactly one category name from
the list you are given, nothing else.`,
		}}},
	}, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting chat:", err)
		return subcommands.ExitFailure
	}

	var names []string
	for cat := range ledger.Categories() {
		if cat.Matches(expense.Expense) {
			names = append(names, cat.Name)
		}
	}
	prompt := fmt.Sprintf("Categories: %s.\nExpense: %s", strings.Join(names, ", "), description)

	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error asking Gemini:", err)
		return subcommands.ExitFailure
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no response from Gemini.")
		return subcommands.ExitFailure
	}

	answer := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	if _, err := resolveCategory(ledger, answer); err != nil {
		// The model went off-list; show its answer anyway.
		fmt.Fprintf(os.Stderr, "warning: %q is not a known category\n", answer)
	}
	fmt.Println(answer)
	return subcommands.ExitSuccess
}
