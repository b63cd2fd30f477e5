package formatter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avelusamy/leetcoach/internal/domain"
)

func rec(title string, completed bool) domain.AttemptRecord {
	return domain.AttemptRecord{
		Title:         title,
		Difficulty:    domain.DifficultyEasy,
		Completed:     completed,
		DateAttempted: "2026-08-20",
	}
}

func TestComputeStats_CountsAndStreak(t *testing.T) {
	history := []domain.AttemptRecord{
		rec("a", true),
		rec("b", false),
		rec("c", true),
		rec("d", true),
	}

	stats := ComputeStats(history)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Completed)
	assert.Equal(t, 2, stats.Streak)
	assert.InDelta(t, 75.0, stats.CompletionRate(), 0.01)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Streak)
	assert.Equal(t, 0.0, stats.CompletionRate())
}

func TestComputeStats_StreakBrokenByLatestIncomplete(t *testing.T) {
	history := []domain.AttemptRecord{
		rec("a", true),
		rec("b", false),
	}
	assert.Equal(t, 0, ComputeStats(history).Streak)
}

func TestFormatHistory_EmptyHistory(t *testing.T) {
	out := FormatHistory(nil)
	assert.Contains(t, out, "No attempts recorded yet.")
}

func TestFormatHistory_NewestFirstAndLimited(t *testing.T) {
	var history []domain.AttemptRecord
	for i := 0; i < 12; i++ {
		history = append(history, rec(fmt.Sprintf("problem-%02d", i), true))
	}

	out := FormatHistory(history)
	assert.Contains(t, out, "problem-11")
	assert.Contains(t, out, "problem-02")
	// Only the 10 most recent appear.
	assert.NotContains(t, out, "problem-01")
	assert.NotContains(t, out, "problem-00")
	assert.Contains(t, out, "Attempts: 12")
}
