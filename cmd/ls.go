package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/prasetyo/belanja"
	"github.com/prasetyo/belanja/renderer"
)

type lsCmd struct {
	currency string
}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "display the shopping list with its grand total" }
func (*lsCmd) Usage() string {
	return `blj ls [-c <currency>]

  Renders the list in insertion order with per-line totals, item ids and
  the grand total.
`
}

func (p *lsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.currency, "c", "IDR", "Display currency (IDR, USD, EUR, JPY, GBP). Not stored.")
}

func (p *lsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kv, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer kv.Close()
	prefs := belanja.LoadPreferences(kv)

	currency, err := sessionCurrency(p.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	list := belanja.LoadList(kv)
	md := renderer.ListView(list.Snapshot(), list.Total(), renderer.Context{
		Lang:     prefs.Language,
		Currency: currency,
	})
	printMarkdown(md, prefs.DarkMode)
	return subcommands.ExitSuccess
}
