package catalog

import (
	"strings"

	"github.com/agext/levenshtein"

	"github.com/avelusamy/leetcoach/internal/domain"
)

// DefaultLink is returned when a title cannot be resolved to a catalog row.
const DefaultLink = "https://leetcode.com"

// matchThreshold is the minimum similarity ratio for accepting a fuzzy match.
const matchThreshold = 0.6

// Match fuzzy-matches a free-text problem title against the catalog. On
// success it returns the link and original-case title of the first catalog
// row whose normalized title equals the best match. On rejection it returns
// DefaultLink and the normalized input title.
//
// This is best-effort canonicalization, not an error path: callers must
// tolerate found == false.
func Match(title string, entries []domain.CatalogEntry) (link, canonical string, found bool) {
	normalized := normalize(title)
	if len(entries) == 0 {
		return DefaultLink, normalized, false
	}

	best := -1
	bestScore := 0.0
	for i, e := range entries {
		score := levenshtein.Similarity(normalized, normalize(e.Title), nil)
		if score >= matchThreshold && score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best == -1 {
		return DefaultLink, normalized, false
	}

	// First row wins when several rows share the matched normalized title.
	matched := normalize(entries[best].Title)
	for _, e := range entries {
		if normalize(e.Title) == matched {
			return e.Link, e.Title, true
		}
	}
	return entries[best].Link, entries[best].Title, true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
