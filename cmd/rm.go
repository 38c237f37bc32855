package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/prasetyo/belanja"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete items from the shopping list by id" }
func (*rmCmd) Usage() string {
	return `blj rm <id> [<id>...]

  Deletes the items with the given ids. Unknown ids are silently
  ignored. Use 'blj ls' to see item ids.
`
}

func (*rmCmd) SetFlags(*flag.FlagSet) {}

func (p *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no item id given.")
		return subcommands.ExitUsageError
	}

	kv, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer kv.Close()

	list := belanja.LoadList(kv)
	for _, id := range f.Args() {
		if err := list.Delete(id); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
