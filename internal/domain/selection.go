package domain

// Recommendation is the structured object the recommendation oracle must
// return: the next problem to attempt and a one-sentence rationale.
// Field names match the JSON keys the oracle is instructed to emit.
type Recommendation struct {
	Title      string `json:"Title"`
	Difficulty string `json:"Difficulty"`
	Link       string `json:"Link"`
	Reason     string `json:"Reason"`
}

// RevisionDirective is a mandatory re-practice of a previously completed
// problem. It exists only for the duration of one scheduling evaluation and
// always overrides oracle selection.
type RevisionDirective struct {
	Title      string
	Difficulty Difficulty
	Link       string
	Reason     string
	Mandatory  bool
}

// SelectionResult is the single-slot record of the most recent selection,
// persisted for the notification collaborator. Each selection cycle fully
// replaces the previous record.
type SelectionResult struct {
	Title              string       `json:"title"`
	Link               string       `json:"link"`
	PreviousDifficulty Difficulty   `json:"previous_difficulty"`
	RecentTags         []string     `json:"recent_tags"`
	UserBehavior       UserBehavior `json:"user_behavior"`
	Reason             string       `json:"reason"`
	Tag                string       `json:"tag,omitempty"`
}

// SelectionTag composes the informational tag for a selection: "revision"
// when the selection came from a due revision, plus "not Complete" when the
// triggering attempt was not completed. Revision comes first; the parts are
// space-joined.
func SelectionTag(isRevision, attemptCompleted bool) string {
	tag := ""
	if isRevision {
		tag = "revision"
	}
	if !attemptCompleted {
		if tag != "" {
			tag += " "
		}
		tag += "not Complete"
	}
	return tag
}
