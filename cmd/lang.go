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

type langCmd struct{}

func (*langCmd) Name() string     { return "lang" }
func (*langCmd) Synopsis() string { return "show or set the display language" }
func (*langCmd) Usage() string {
	return `blj lang [id|en]

  Without an argument, prints the current display language. With one,
  sets and persists it.
`
}

func (*langCmd) SetFlags(*flag.FlagSet) {}

func (p *langCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kv, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer kv.Close()

	if f.NArg() == 0 {
		fmt.Println(belanja.LoadPreferences(kv).Language)
		return subcommands.ExitSuccess
	}

	lang, err := i18n.ParseLang(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if err := belanja.SaveLanguage(kv, lang); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
