// Package recommend runs the selection cycle: record the attempt, apply
// the revision override, otherwise ask the oracle, then persist the
// outcome for the notification collaborator.
package recommend

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/avelusamy/leetcoach/internal/domain"
	"github.com/avelusamy/leetcoach/internal/oracle"
	"github.com/avelusamy/leetcoach/internal/scheduler"
	"github.com/avelusamy/leetcoach/internal/store"
)

// Selection is the outcome of one selection cycle.
type Selection struct {
	Recommendation domain.Recommendation
	Result         domain.SelectionResult
	IsRevision     bool
}

// Selector orchestrates one selection cycle per submitted attempt.
type Selector struct {
	client    oracle.Client
	history   *store.HistoryStore
	selection *store.SelectionStore
	catalog   []domain.CatalogEntry
	log       zerolog.Logger
}

// NewSelector wires a Selector from its collaborators. The catalog slice
// is read-only reference data shared with the revision scheduler.
func NewSelector(
	client oracle.Client,
	history *store.HistoryStore,
	selection *store.SelectionStore,
	catalog []domain.CatalogEntry,
	log zerolog.Logger,
) *Selector {
	return &Selector{
		client:    client,
		history:   history,
		selection: selection,
		catalog:   catalog,
		log:       log,
	}
}

// Next appends the attempt to history and produces the next problem. A
// due revision always overrides oracle selection. The oracle is called at
// most once, with no retry; its errors surface to the caller with the raw
// reply preserved, and nothing is persisted to the selection store on
// failure.
func (s *Selector) Next(ctx context.Context, attempt domain.AttemptRecord, now time.Time) (*Selection, error) {
	if err := attempt.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.history.Append(attempt)
	if err != nil {
		return nil, err
	}
	// Everything before the just-appended attempt is the prior history
	// summarized for the oracle.
	prior := updated[:len(updated)-1]

	var rec domain.Recommendation
	isRevision := false

	if directive := scheduler.CheckDue(now, updated, s.catalog); directive != nil {
		s.log.Info().Str("title", directive.Title).Msg("revision due, overriding oracle selection")
		rec = domain.Recommendation{
			Title:      directive.Title,
			Difficulty: string(directive.Difficulty),
			Link:       directive.Link,
			Reason:     directive.Reason,
		}
		isRevision = true
	} else {
		resp, err := s.client.Generate(ctx, oracle.Request{
			SystemPrompt: SystemPrompt,
			UserPrompt:   BuildPrompt(attempt, prior),
		})
		if err != nil {
			return nil, err
		}
		rec, err = ParseRecommendation(resp.Text)
		if err != nil {
			return nil, err
		}
	}

	result := domain.SelectionResult{
		Title:              rec.Title,
		Link:               rec.Link,
		PreviousDifficulty: attempt.Difficulty,
		RecentTags:         attempt.Tags,
		UserBehavior:       attempt.Behavior(),
		Reason:             rec.Reason,
		Tag:                domain.SelectionTag(isRevision, attempt.Completed),
	}
	if err := s.selection.Save(result); err != nil {
		return nil, err
	}

	return &Selection{
		Recommendation: rec,
		Result:         result,
		IsRevision:     isRevision,
	}, nil
}
