// Package cmd implements the CLI application to manage the shopping list.
package cmd

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/lmittmann/tint"

	"github.com/prasetyo/belanja"
	"github.com/prasetyo/belanja/kvstore"
)

// Commands is the list of subcommands the binary registers.
var Commands = []subcommands.Command{
	&addCmd{},
	&rmCmd{},
	&clearCmd{},
	&lsCmd{},
	&totalCmd{},
	&exportCmd{},
	&profileCmd{},
	&langCmd{},
	&themeCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("data", defaultDataFile(), "Path to the shopping list database file")

func defaultDataFile() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "belanja", "belanja.db")
	}
	return "belanja.db"
}

// SetupLogging configures colored structured logging on stderr, at the
// level given by LOG_LEVEL (default: warn, so recoverable data issues
// are visible without drowning command output).
func SetupLogging() {
	level := slog.LevelWarn
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{Level: level, TimeFormat: time.Kitchen}),
	))
}

// openStore opens the backing key-value store.
func openStore() (kvstore.Store, error) {
	kv, err := kvstore.Open(*dataFile)
	if err != nil {
		return nil, fmt.Errorf("could not open data store %q: %w", *dataFile, err)
	}
	return kv, nil
}

// sessionCurrency validates the -c flag against the selectable set.
func sessionCurrency(code string) (string, error) {
	if !belanja.ValidCurrency(code) {
		return "", fmt.Errorf("unknown currency %q (want one of %s)", code, strings.Join(belanja.Currencies, ", "))
	}
	return code, nil
}

// printMarkdown renders markdown to the terminal, styled after the
// persisted theme preference.
func printMarkdown(md string, dark bool) {
	style := "light"
	if dark {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		// Raw markdown is still perfectly readable.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
