package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/prasetyo/belanja"
	"github.com/prasetyo/belanja/date"
	"github.com/prasetyo/belanja/i18n"
)

type addCmd struct {
	name     string
	quantity float64
	unit     string
	price    float64
	date     string
	currency string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an item to the shopping list" }
func (*addCmd) Usage() string {
	return `blj add -n <name> -q <quantity> [-u <unit>] -p <price> [-d <date>] [-c <currency>]

  Validates and appends one item to the list. The line total is computed
  as quantity times price and stored with the item.

Usage Examples:
# Two kilograms of rice bought on 2024-01-10.
$ blj add -n Rice -q 2 -u kg -p 15000 -d 2024-01-10

`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "n", "", "Item name.")
	f.Float64Var(&p.quantity, "q", 0, "Quantity, must be positive.")
	f.StringVar(&p.unit, "u", string(belanja.Piece), "Unit (kg, g, L, ml, m, cm, pcs, pack, box, dz).")
	f.Float64Var(&p.price, "p", 0, "Unit price, must be positive.")
	f.StringVar(&p.date, "d", date.Today().String(), "Purchase date (YYYY-MM-DD).")
	f.StringVar(&p.currency, "c", "IDR", "Display currency (IDR, USD, EUR, JPY, GBP). Not stored.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	unit, err := belanja.ParseUnit(p.unit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	// An empty -d stays the zero date and fails validation below, so the
	// user gets the localized message rather than a parse error.
	var on date.Date
	if p.date != "" {
		if on, err = date.Parse(p.date); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	list := belanja.LoadList(kv)
	item, err := list.Add(belanja.Draft{
		Name:     p.name,
		Quantity: belanja.Q(p.quantity),
		Unit:     unit,
		Price:    belanja.A(p.price),
		Date:     on,
	})
	var verr *belanja.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(os.Stderr, verr.Message(prefs.Language))
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s: %s\n", i18n.T(i18n.TotalPrice, prefs.Language),
		belanja.FormatCurrency(item.Total, currency, prefs.Language))
	return subcommands.ExitSuccess
}
