package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/prasetyo/belanja/cmd"
)

func main() {
	cmd.SetupLogging()
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion; it returns immediately unless the
// shell is asking for completions.
func completion() {
	units := predict.Set{"kg", "g", "L", "ml", "m", "cm", "pcs", "pack", "box", "dz"}
	currencies := predict.Set{"IDR", "USD", "EUR", "JPY", "GBP"}

	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"data": predict.Files("*"),
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"n": predict.Nothing,
				"q": predict.Nothing,
				"u": units,
				"p": predict.Nothing,
				"d": predict.Nothing,
				"c": currencies,
			}},
			"rm":    {},
			"clear": {},
			"ls":    {Flags: map[string]complete.Predictor{"c": currencies}},
			"total": {Flags: map[string]complete.Predictor{"c": currencies}},
			"export": {Flags: map[string]complete.Predictor{
				"o": predict.Files("*.html"),
				"c": currencies,
			}},
			"profile": {Flags: map[string]complete.Predictor{
				"name":         predict.Nothing,
				"job":          predict.Nothing,
				"institution":  predict.Nothing,
				"id":           predict.Nothing,
				"address":      predict.Nothing,
				"photo":        predict.Files("*"),
				"remove-photo": predict.Nothing,
			}},
			"lang":  {Args: predict.Set{"id", "en"}},
			"theme": {Args: predict.Set{"dark", "light"}},
		},
	}
	c.Complete("blj")
}
