package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelusamy/leetcoach/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show attempt statistics and recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := app.History.Load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistory(history))
			return nil
		},
	}
}
