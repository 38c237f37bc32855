package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/prasetyo/belanja"
)

type clearCmd struct{}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete every item from the shopping list" }
func (*clearCmd) Usage() string {
	return `blj clear

  Empties the shopping list unconditionally. The profile and the
  preferences are untouched.
`
}

func (*clearCmd) SetFlags(*flag.FlagSet) {}

func (p *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kv, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer kv.Close()

	if err := belanja.LoadList(kv).Clear(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
