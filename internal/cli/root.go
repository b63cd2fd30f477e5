package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/avelusamy/leetcoach/internal/notify"
	"github.com/avelusamy/leetcoach/internal/recommend"
	"github.com/avelusamy/leetcoach/internal/store"
)

// App holds the collaborators CLI commands run against.
type App struct {
	Selector  *recommend.Selector
	History   *store.HistoryStore
	Selection *store.SelectionStore
	Notifier  *notify.Runner

	// IsInteractive reports whether stdin is a terminal, gating the
	// attempt form.
	IsInteractive func() bool

	Log zerolog.Logger
}

// NewRootCmd creates the top-level "leetcoach" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "leetcoach",
		Short:         "Adaptive LeetCode practice recommender",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAttemptCmd(app),
		newHistoryCmd(app),
		newNotifyCmd(app),
	)

	return root
}
