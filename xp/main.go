package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/expense/cmd"
)

func main() {
	// A .env file next to the command can set EXPENSE_FILE, EXPENSE_CURRENCY
	// or GEMINI_API_KEY; missing is fine.
	godotenv.Load()

	completion().Complete("xp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion builds the shell completion tree. Install it with:
//
//	COMP_INSTALL=1 xp
func completion() *complete.Command {
	account := map[string]complete.Predictor{"account": predict.Something}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"file":     predict.Files("*.json"),
			"currency": predict.Set{"USD", "EUR", "GBP", "BRL", "JPY"},
		},
		Sub: map[string]*complete.Command{
			"add-account": {Flags: map[string]complete.Predictor{
				"type": predict.Set{"BANK", "CREDIT", "CASH"},
			}},
			"accounts":       {},
			"update-account": {Flags: map[string]complete.Predictor{"type": predict.Set{"BANK", "CREDIT", "CASH"}}},
			"delete-account": {},
			"expense":        {Flags: account},
			"income":         {Flags: account},
			"transfer":       {},
			"tx":             {Flags: map[string]complete.Predictor{"p": predict.Set{"week", "month"}}},
			"edit":           {},
			"rm":             {},
			"summary":        {Flags: map[string]complete.Predictor{"p": predict.Set{"week", "month"}}},
			"categories":     {},
			"export": {Flags: map[string]complete.Predictor{
				"format": predict.Set{"json", "csv"},
				"o":      predict.Files("*"),
			}},
			"import":  {Flags: map[string]complete.Predictor{"i": predict.Files("*.json")}},
			"config":  {Flags: map[string]complete.Predictor{"theme": predict.Set{"system", "light", "dark"}}},
			"suggest": {},
			"topic":   {Args: predict.Set{"readme", "accounts", "transactions", "summary", "data", "*"}},
		},
	}
}
