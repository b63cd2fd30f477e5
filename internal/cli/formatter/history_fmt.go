package formatter

import (
	"fmt"
	"strings"

	"github.com/avelusamy/leetcoach/internal/domain"
)

// HistoryStats summarizes an attempt history for the history view.
type HistoryStats struct {
	Total     int
	Completed int
	// Streak counts consecutive completed attempts ending at the most
	// recent record.
	Streak int
}

// ComputeStats derives summary statistics from the full history in
// chronological order.
func ComputeStats(history []domain.AttemptRecord) HistoryStats {
	stats := HistoryStats{Total: len(history)}
	for _, rec := range history {
		if rec.Completed {
			stats.Completed++
		}
	}
	for i := len(history) - 1; i >= 0; i-- {
		if !history[i].Completed {
			break
		}
		stats.Streak++
	}
	return stats
}

// CompletionRate returns the completed fraction as a percentage, or 0
// for an empty history.
func (s HistoryStats) CompletionRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}

// historyTableLimit caps the table at the most recent attempts.
const historyTableLimit = 10

// FormatHistory renders the stats summary and a table of the most
// recent attempts, newest first.
func FormatHistory(history []domain.AttemptRecord) string {
	var b strings.Builder

	if len(history) == 0 {
		b.WriteString(Dim("No attempts recorded yet."))
		return RenderBox("Practice History", b.String())
	}

	stats := ComputeStats(history)
	summary := fmt.Sprintf(
		"%s  %s  %s  %s",
		StyleFg.Render(fmt.Sprintf("Attempts: %d", stats.Total)),
		StyleGreen.Render(fmt.Sprintf("Completed: %d", stats.Completed)),
		StyleBlue.Render(fmt.Sprintf("Rate: %.0f%%", stats.CompletionRate())),
		StylePurple.Render(fmt.Sprintf("Streak: %d", stats.Streak)),
	)
	b.WriteString(summary)
	b.WriteString("\n\n")

	headers := []string{"DATE", "PROBLEM", "DIFFICULTY", "TIME", "STATUS"}
	var rows [][]string
	start := len(history) - historyTableLimit
	if start < 0 {
		start = 0
	}
	for i := len(history) - 1; i >= start; i-- {
		rec := history[i]
		date := rec.DateAttempted
		if t, err := rec.AttemptDate(); err == nil {
			date = HumanDate(t)
		}
		taken := rec.TimeTaken
		if taken == "" {
			taken = "--"
		}
		rows = append(rows, []string{
			Dim(date),
			StyleFg.Render(rec.Title),
			DifficultyPill(rec.Difficulty),
			StyleBlue.Render(taken),
			CompletionPill(rec.Completed),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return RenderBox("Practice History", strings.TrimRight(b.String(), "\n"))
}
