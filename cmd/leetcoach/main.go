package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/avelusamy/leetcoach/internal/catalog"
	"github.com/avelusamy/leetcoach/internal/cli"
	"github.com/avelusamy/leetcoach/internal/config"
	"github.com/avelusamy/leetcoach/internal/notify"
	"github.com/avelusamy/leetcoach/internal/oracle"
	"github.com/avelusamy/leetcoach/internal/recommend"
	"github.com/avelusamy/leetcoach/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log := newLogger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.CheckPreconditions(); err != nil {
		return err
	}

	entries, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading problem catalog: %w", err)
	}

	var observer oracle.Observer = oracle.NoopObserver{}
	if cfg.Oracle.LogCalls {
		observer = oracle.NewLogObserver(log)
	}
	client, err := oracle.NewClient(context.Background(), cfg.Oracle, observer)
	if err != nil {
		return err
	}

	history := store.NewHistoryStore(cfg.HistoryPath, log)
	selection := store.NewSelectionStore(cfg.SelectionPath, log)

	app := &cli.App{
		Selector:  recommend.NewSelector(client, history, selection, entries, log),
		History:   history,
		Selection: selection,
		Notifier:  notify.NewRunner(cfg.NotifyCmd, log),
		Log:       log,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// newLogger builds the process logger. Level comes from LEETCOACH_LOG and
// defaults to warn so normal runs stay quiet.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if v := os.Getenv("LEETCOACH_LOG"); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
