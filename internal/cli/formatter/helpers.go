package formatter

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/avelusamy/leetcoach/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// DifficultyPill returns a colored difficulty label.
func DifficultyPill(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyEasy:
		return StyleGreen.Render("● Easy")
	case domain.DifficultyMedium:
		return StyleYellow.Render("● Medium")
	case domain.DifficultyHard:
		return StyleRed.Render("● Hard")
	default:
		return StyleDim.Render(string(d))
	}
}

// CompletionPill returns a colored completion indicator.
func CompletionPill(completed bool) string {
	if completed {
		return StyleGreen.Render("✔ Completed")
	}
	return StyleYellow.Render("○ Incomplete")
}

// HumanDate returns "Today", "Yesterday", or an absolute date.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}
