package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/prasetyo/belanja"
	"github.com/prasetyo/belanja/i18n"
	"github.com/prasetyo/belanja/renderer"
)

type exportCmd struct {
	output   string
	currency string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the shopping list as an HTML document" }
func (*exportCmd) Usage() string {
	return `blj export [-o <file>] [-c <currency>]

  Writes the report document: the profile header (photo and non-empty
  details), the item table in insertion order, and the grand total.
  A broken profile photo is skipped, never fatal.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", renderer.DefaultExportName, "Output file.")
	f.StringVar(&p.currency, "c", "IDR", "Display currency (IDR, USD, EUR, JPY, GBP). Not stored.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	profile := belanja.LoadProfile(kv, prefs.Language)

	ctx := renderer.Context{Lang: prefs.Language, Currency: currency}
	md := renderer.Report(list.Snapshot(), profile, ctx)
	doc, err := renderer.HTMLDocument(md, i18n.T(i18n.ReportTitle, prefs.Language), prefs.DarkMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := os.WriteFile(p.output, doc, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report %q: %v\n", p.output, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Exported %d items to %s\n", list.Len(), p.output)
	return subcommands.ExitSuccess
}
