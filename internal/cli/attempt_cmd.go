package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avelusamy/leetcoach/internal/cli/formatter"
	"github.com/avelusamy/leetcoach/internal/domain"
	"github.com/avelusamy/leetcoach/internal/oracle"
)

func newAttemptCmd(app *App) *cobra.Command {
	var vals attemptFormValues
	var sendNotify bool

	cmd := &cobra.Command{
		Use:   "attempt",
		Short: "Record a problem attempt and get the next recommendation",
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := app.IsInteractive != nil && app.IsInteractive()

			// Without a title flag an interactive session prompts for
			// everything; a non-interactive one cannot.
			if !cmd.Flags().Changed("title") {
				if !interactive {
					return fmt.Errorf("--title is required when not running in a terminal")
				}
				if err := runAttemptForm(&vals); err != nil {
					return err
				}
			}
			if vals.Date == "" {
				vals.Date = time.Now().Format(domain.DateLayout)
			}

			rec, err := attemptFromValues(vals)
			if err != nil {
				return err
			}

			var stop func()
			if interactive {
				stop = formatter.StartSpinner("Choosing your next problem...")
			}
			sel, err := app.Selector.Next(context.Background(), rec, time.Now())
			if stop != nil {
				stop()
			}
			if err != nil {
				return describeSelectionError(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSelection(sel))

			if sendNotify {
				if err := app.Notifier.Send(context.Background()); err != nil {
					// The attempt and selection are already persisted;
					// notification failure is reported but not fatal.
					fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleYellow.Render(fmt.Sprintf("notification: %v", err)))
					return nil
				}
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("notification sent"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&vals.Title, "title", "", "Problem title as attempted")
	cmd.Flags().StringVar(&vals.Difficulty, "difficulty", "Easy", "Difficulty: Easy, Medium, or Hard")
	cmd.Flags().StringVar(&vals.TimeTaken, "time-taken", "", "Time spent, free text (e.g. \"25 mins\")")
	cmd.Flags().BoolVar(&vals.Completed, "completed", false, "Whether the problem was solved")
	cmd.Flags().StringVar(&vals.Tags, "tags", "", "Comma-separated topic tags")
	cmd.Flags().StringVar(&vals.Date, "date", "", "Attempt date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&sendNotify, "notify", false, "Run the notification command after selection")

	return cmd
}

// describeSelectionError turns oracle failures into actionable messages
// while keeping the original error in the chain.
func describeSelectionError(err error) error {
	switch {
	case errors.Is(err, oracle.ErrTimeout):
		return fmt.Errorf("the recommendation service timed out; your attempt was recorded, try again: %w", err)
	case errors.Is(err, oracle.ErrUnavailable):
		return fmt.Errorf("the recommendation service is unreachable; your attempt was recorded, try again: %w", err)
	case errors.Is(err, oracle.ErrMalformedResponse), errors.Is(err, oracle.ErrIncompleteResponse):
		if raw, ok := oracle.RawResponse(err); ok {
			return fmt.Errorf("the recommendation service returned an unusable reply; your attempt was recorded: %w\nraw reply: %s", err, raw)
		}
		return fmt.Errorf("the recommendation service returned an unusable reply; your attempt was recorded: %w", err)
	default:
		return err
	}
}
