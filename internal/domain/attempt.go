package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used everywhere in the attempt log.
const DateLayout = "2006-01-02"

// AttemptRecord is one recorded try at a problem on one date. Records are
// appended to the history log in submission order and never modified there.
type AttemptRecord struct {
	Title         string     `json:"title"`
	Difficulty    Difficulty `json:"difficulty"`
	TimeTaken     string     `json:"time_taken,omitempty"`
	Completed     bool       `json:"completed"`
	Tags          []string   `json:"tags"`
	DateAttempted string     `json:"date_attempted"`
	Link          string     `json:"link,omitempty"`
}

// Validate checks the submission invariants: non-empty title, known
// difficulty, and a parseable attempt date.
func (a AttemptRecord) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("attempt title must not be empty")
	}
	if _, err := ParseDifficulty(string(a.Difficulty)); err != nil {
		return err
	}
	if _, err := a.AttemptDate(); err != nil {
		return err
	}
	return nil
}

// AttemptDate parses DateAttempted as a calendar date at UTC midnight.
func (a AttemptRecord) AttemptDate() (time.Time, error) {
	t, err := time.Parse(DateLayout, a.DateAttempted)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", a.DateAttempted)
	}
	return t, nil
}

// Behavior maps the completion flag onto the user behavior enum recorded
// with a selection.
func (a AttemptRecord) Behavior() UserBehavior {
	if a.Completed {
		return BehaviorCompleted
	}
	return BehaviorSkipped
}

// SplitTags parses a comma-separated tag string into a trimmed tag list,
// dropping empty segments.
func SplitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
