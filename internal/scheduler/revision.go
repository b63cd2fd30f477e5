// Package scheduler decides when a past attempt is due for mandatory
// revision.
package scheduler

import (
	"time"

	"github.com/avelusamy/leetcoach/internal/catalog"
	"github.com/avelusamy/leetcoach/internal/domain"
)

// RevisionIntervalDays is the fixed revisit interval. The window is an
// exact single-day match: a revision missed on day 7 stays missed.
const RevisionIntervalDays = 7

// RevisionReason is the fixed reason text attached to every directive.
const RevisionReason = "solved exactly 7 days ago, due for revision."

// CheckDue scans history in stored order and returns a directive for the
// first completed attempt solved exactly RevisionIntervalDays before now,
// or nil when nothing qualifies. Records with unparseable dates are
// skipped. When the qualifying record carries no link, the title is
// resolved against the catalog and the in-memory record is patched with
// the canonical title and link; persisted history is never rewritten.
//
// Earliest-submitted wins when several records are due on the same day:
// at most one directive is produced per evaluation.
func CheckDue(now time.Time, history []domain.AttemptRecord, entries []domain.CatalogEntry) *domain.RevisionDirective {
	today := midnight(now)

	for i := range history {
		rec := &history[i]
		if !rec.Completed {
			continue
		}
		solved, err := rec.AttemptDate()
		if err != nil {
			continue
		}
		days := int(today.Sub(midnight(solved)).Hours() / 24)
		if days != RevisionIntervalDays {
			continue
		}

		if rec.Link == "" {
			link, canonical, _ := catalog.Match(rec.Title, entries)
			rec.Title = canonical
			rec.Link = link
		}

		return &domain.RevisionDirective{
			Title:      rec.Title,
			Difficulty: rec.Difficulty,
			Link:       rec.Link,
			Reason:     RevisionReason,
			Mandatory:  true,
		}
	}
	return nil
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
