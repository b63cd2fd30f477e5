package recommend

import (
	"fmt"
	"strings"

	"github.com/avelusamy/leetcoach/internal/domain"
	"github.com/avelusamy/leetcoach/internal/oracle"
)

// oracleReply mirrors the JSON object the oracle is instructed to return.
// Pointer fields distinguish an absent key from an empty value.
type oracleReply struct {
	Title      *string `json:"Title"`
	Difficulty *string `json:"Difficulty"`
	Link       *string `json:"Link"`
	Reason     *string `json:"Reason"`
}

// ParseRecommendation extracts and validates the recommendation object
// from raw oracle text. A reply with no parseable JSON object maps to
// oracle.ErrMalformedResponse; a parsed object missing any of the four
// required keys maps to oracle.ErrIncompleteResponse. Both preserve the
// raw text for diagnostics.
func ParseRecommendation(raw string) (domain.Recommendation, error) {
	reply, err := oracle.ExtractJSON[oracleReply](raw)
	if err != nil {
		return domain.Recommendation{}, err
	}

	var missing []string
	for key, v := range map[string]*string{
		"Title":      reply.Title,
		"Difficulty": reply.Difficulty,
		"Link":       reply.Link,
		"Reason":     reply.Reason,
	} {
		if v == nil {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return domain.Recommendation{}, &oracle.ResponseError{
			Raw: raw,
			Err: fmt.Errorf("%w: missing keys %s", oracle.ErrIncompleteResponse, strings.Join(sorted(missing), ", ")),
		}
	}

	return domain.Recommendation{
		Title:      *reply.Title,
		Difficulty: *reply.Difficulty,
		Link:       *reply.Link,
		Reason:     *reply.Reason,
	}, nil
}

func sorted(keys []string) []string {
	order := []string{"Title", "Difficulty", "Link", "Reason"}
	var out []string
	for _, k := range order {
		for _, m := range keys {
			if m == k {
				out = append(out, k)
			}
		}
	}
	return out
}
