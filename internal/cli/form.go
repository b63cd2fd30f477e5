package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/avelusamy/leetcoach/internal/cli/formatter"
	"github.com/avelusamy/leetcoach/internal/domain"
)

// leetcoachHuhTheme returns a custom huh theme using the existing
// Gruvbox palette.
func leetcoachHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// attemptFormValues collects the raw form answers before they are parsed
// into an AttemptRecord.
type attemptFormValues struct {
	Title      string
	Difficulty string
	TimeTaken  string
	Completed  bool
	Tags       string
	Date       string
}

// runAttemptForm prompts for a full attempt submission interactively.
func runAttemptForm(vals *attemptFormValues) error {
	if vals.Date == "" {
		vals.Date = time.Now().Format(domain.DateLayout)
	}
	if vals.Difficulty == "" {
		vals.Difficulty = string(domain.DifficultyEasy)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Problem title").
				Placeholder("Two Sum").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}).
				Value(&vals.Title),
			huh.NewSelect[string]().
				Title("Difficulty").
				Options(
					huh.NewOption("Easy", string(domain.DifficultyEasy)),
					huh.NewOption("Medium", string(domain.DifficultyMedium)),
					huh.NewOption("Hard", string(domain.DifficultyHard)),
				).
				Value(&vals.Difficulty),
			huh.NewInput().
				Title("Time taken").
				Placeholder("25 mins").
				Value(&vals.TimeTaken),
			huh.NewConfirm().
				Title("Completed?").
				Affirmative("Yes").
				Negative("No").
				Value(&vals.Completed),
			huh.NewInput().
				Title("Tags").
				Description("Comma-separated, e.g. array, hash-map").
				Value(&vals.Tags),
			huh.NewInput().
				Title("Date attempted").
				Description("YYYY-MM-DD").
				Validate(func(s string) error {
					if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					return nil
				}).
				Value(&vals.Date),
		),
	).WithTheme(leetcoachHuhTheme())

	return form.Run()
}

// attemptFromValues parses the raw answers into a validated record.
func attemptFromValues(vals attemptFormValues) (domain.AttemptRecord, error) {
	diff, err := domain.ParseDifficulty(vals.Difficulty)
	if err != nil {
		return domain.AttemptRecord{}, err
	}
	rec := domain.AttemptRecord{
		Title:         strings.TrimSpace(vals.Title),
		Difficulty:    diff,
		TimeTaken:     strings.TrimSpace(vals.TimeTaken),
		Completed:     vals.Completed,
		Tags:          domain.SplitTags(vals.Tags),
		DateAttempted: strings.TrimSpace(vals.Date),
	}
	if err := rec.Validate(); err != nil {
		return domain.AttemptRecord{}, err
	}
	return rec, nil
}
