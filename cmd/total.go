package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/prasetyo/belanja"
	"github.com/prasetyo/belanja/i18n"
)

type totalCmd struct {
	currency string
}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "print the grand total of the shopping list" }
func (*totalCmd) Usage() string {
	return `blj total [-c <currency>]

  Prints the sum of every item's line total, formatted under the given
  display currency.
`
}

func (p *totalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.currency, "c", "IDR", "Display currency (IDR, USD, EUR, JPY, GBP). Not stored.")
}

func (p *totalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	total := belanja.LoadList(kv).Total()
	fmt.Printf("%s: %s\n", i18n.T(i18n.GrandTotal, prefs.Language),
		belanja.FormatCurrency(total, currency, prefs.Language))
	return subcommands.ExitSuccess
}
