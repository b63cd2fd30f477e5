package recommend

import (
	"fmt"
	"strings"

	"github.com/avelusamy/leetcoach/internal/domain"
)

// SystemPrompt sets the oracle's role for every recommendation request.
const SystemPrompt = "You are an AI tutor helping a student practice Data Structures and Algorithms (DSA) on LeetCode. You select the single best next problem for them."

// historyWindow is how many recent attempts are summarized for the oracle.
const historyWindow = 5

// DifficultyGuidance returns the next-difficulty instruction for a given
// previous attempt. The progression is fixed:
//
//	Easy   + not completed -> same or easier
//	Medium + not completed -> Easy or Medium
//	Hard   + not completed -> Medium
//	any    + completed     -> increase or maintain, vary topic
func DifficultyGuidance(prev domain.Difficulty, completed bool) string {
	if completed {
		return "increase or maintain the challenge level, staying within similar or varied topics"
	}
	switch prev {
	case domain.DifficultyEasy:
		return "suggest the same or easier"
	case domain.DifficultyMedium:
		return "suggest an Easy or Medium problem"
	case domain.DifficultyHard:
		return "suggest a Medium"
	default:
		return "suggest the same or easier"
	}
}

// BuildPrompt renders the full recommendation request: the triggering
// attempt, the progression guidance, a tag-exclusion hint, a summary of up
// to the last five earlier attempts (oldest first), and the strict
// single-JSON-object response contract.
func BuildPrompt(attempt domain.AttemptRecord, history []domain.AttemptRecord) string {
	var b strings.Builder

	completed := "no"
	if attempt.Completed {
		completed = "yes"
	}

	fmt.Fprintf(&b, "The student recently attempted the LeetCode problem titled %q with difficulty %s.\n", attempt.Title, attempt.Difficulty)
	fmt.Fprintf(&b, "Completion status: %s.\n", completed)
	fmt.Fprintf(&b, "Date: %s.\n\n", attempt.DateAttempted)

	b.WriteString("Guidelines for selecting the next problem:\n")
	fmt.Fprintf(&b, "- %s.\n", DifficultyGuidance(attempt.Difficulty, attempt.Completed))
	if len(attempt.Tags) > 0 {
		fmt.Fprintf(&b, "- Avoid repeating these tags: %s.\n", strings.Join(attempt.Tags, ", "))
	}

	b.WriteString("\nSummary of recent attempts:\n")
	b.WriteString(SummarizeHistory(history))

	b.WriteString("\nReturn the result as a single JSON object:\n")
	b.WriteString(`{"Title": "<problem title>", "Difficulty": "<difficulty>", "Link": "<Leetcode link>", "Reason": "<1-sentence reason>"}`)
	b.WriteString("\nONLY return valid JSON.\n")

	return b.String()
}

// SummarizeHistory renders the last historyWindow attempts, oldest first
// within the window, one line per attempt.
func SummarizeHistory(history []domain.AttemptRecord) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	if len(history) == 0 {
		return ""
	}

	var b strings.Builder
	for _, a := range history {
		outcome := "Skipped"
		if a.Completed {
			outcome = "Completed"
		}
		fmt.Fprintf(&b, "- %s (%s): %s on %s\n", a.Title, a.Difficulty, outcome, a.DateAttempted)
	}
	return b.String()
}
