package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avelusamy/leetcoach/internal/domain"
	"github.com/avelusamy/leetcoach/internal/recommend"
)

func TestFormatSelection_OracleRecommendation(t *testing.T) {
	sel := &recommend.Selection{
		Recommendation: domain.Recommendation{
			Title:      "Valid Parentheses",
			Difficulty: "Easy",
			Link:       "https://leetcode.com/problems/valid-parentheses/",
			Reason:     "Builds on stack fundamentals from your last session.",
		},
		Result: domain.SelectionResult{Title: "Valid Parentheses"},
	}

	out := FormatSelection(sel)
	assert.Contains(t, out, "Valid Parentheses")
	assert.Contains(t, out, "https://leetcode.com/problems/valid-parentheses/")
	assert.Contains(t, out, "Builds on stack fundamentals")
	assert.NotContains(t, out, "MANDATORY REVISION")
}

func TestFormatSelection_RevisionBannerAndTag(t *testing.T) {
	sel := &recommend.Selection{
		Recommendation: domain.Recommendation{
			Title:      "Two Sum",
			Difficulty: "Easy",
			Link:       "https://leetcode.com/problems/two-sum/",
			Reason:     "solved exactly 7 days ago, due for revision.",
		},
		Result:     domain.SelectionResult{Tag: "revision not Complete"},
		IsRevision: true,
	}

	out := FormatSelection(sel)
	assert.Contains(t, out, "MANDATORY REVISION")
	assert.Contains(t, out, "REVISION DUE")
	assert.Contains(t, out, "revision not Complete")
}

func TestFormatSelection_UnknownDifficultyRenderedVerbatim(t *testing.T) {
	sel := &recommend.Selection{
		Recommendation: domain.Recommendation{
			Title:      "Mystery Problem",
			Difficulty: "Unrated",
			Reason:     "A change of pace.",
		},
	}

	out := FormatSelection(sel)
	assert.Contains(t, out, "Unrated")
}
