package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/prasetyo/belanja"
)

type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show or set the dark/light theme" }
func (*themeCmd) Usage() string {
	return `blj theme [dark|light]

  Without an argument, prints the current theme. With one, sets and
  persists it. The theme styles the rendered list and the exported
  document.
`
}

func (*themeCmd) SetFlags(*flag.FlagSet) {}

func (p *themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kv, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer kv.Close()

	if f.NArg() == 0 {
		if belanja.LoadPreferences(kv).DarkMode {
			fmt.Println("dark")
		} else {
			fmt.Println("light")
		}
		return subcommands.ExitSuccess
	}

	var dark bool
	switch f.Arg(0) {
	case "dark":
		dark = true
	case "light":
		dark = false
	default:
		fmt.Fprintf(os.Stderr, "unknown theme %q (want dark or light)\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	if err := belanja.SaveTheme(kv, dark); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
