package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelusamy/leetcoach/internal/cli/formatter"
)

func newNotifyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "notify",
		Short: "Re-send the notification for the current selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := app.Selection.Load()
			if err != nil {
				return err
			}
			if sel == nil {
				return fmt.Errorf("no problem selected yet, run `leetcoach attempt` first")
			}

			if err := app.Notifier.Send(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf("notification sent for %q", sel.Title)))
			return nil
		},
	}
}
