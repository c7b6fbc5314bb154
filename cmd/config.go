package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/expense"
)

type configCmd struct {
	theme    string
	language string
	lock     string
	passcode string
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "show or change preferences" }
func (*configCmd) Usage() string {
	return `xp config [-theme <system|light|dark>] [-language <code>] [-lock <on|off>] [-passcode <code>]

  Without flags, prints the current preferences. With flags, changes them.
  Enabling the app lock requires a passcode, either already set or given
  with -passcode.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.theme, "theme", "", "Appearance: system, light or dark.")
	f.StringVar(&c.language, "language", "", "Interface language code (e.g. en, pt).")
	f.StringVar(&c.lock, "lock", "", "App lock: on or off.")
	f.StringVar(&c.passcode, "passcode", "", "App lock passcode.")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	changed := false
	if c.theme != "" {
		theme, err := expense.ParseTheme(c.theme)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		ledger.SetTheme(theme)
		changed = true
	}
	if c.language != "" {
		ledger.SetLanguage(c.language)
		changed = true
	}
	if c.passcode != "" {
		ledger.SetPasscode(c.passcode)
		changed = true
	}
	if c.lock != "" {
		switch c.lock {
		case "on":
			if ledger.Preferences().Passcode == "" {
				fmt.Fprintln(os.Stderr, "Error: enabling the app lock requires a passcode, set one with -passcode.")
				return subcommands.ExitUsageError
			}
			ledger.SetAppLockEnabled(true)
		case "off":
			ledger.SetAppLockEnabled(false)
		default:
			fmt.Fprintf(os.Stderr, "Error: -lock expects on or off, got %q.\n", c.lock)
			return subcommands.ExitUsageError
		}
		changed = true
	}

	if changed {
		if err := encodeLedger(ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	p := ledger.Preferences()
	lock := "off"
	if p.AppLockEnabled {
		lock = "on"
	}
	fmt.Printf("theme:    %s\n", p.Theme)
	fmt.Printf("language: %s\n", p.Language)
	fmt.Printf("lock:     %s\n", lock)
	return subcommands.ExitSuccess
}
