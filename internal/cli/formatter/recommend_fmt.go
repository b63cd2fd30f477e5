package formatter

import (
	"fmt"
	"strings"

	"github.com/avelusamy/leetcoach/internal/domain"
	"github.com/avelusamy/leetcoach/internal/recommend"
)

// FormatSelection renders the outcome of a selection cycle.
func FormatSelection(sel *recommend.Selection) string {
	var b strings.Builder

	if sel.IsRevision {
		b.WriteString(StyleRed.Render("▲ MANDATORY REVISION"))
		b.WriteString("\n\n")
	}

	rec := sel.Recommendation
	b.WriteString(StyleBold.Render(rec.Title))
	if d, err := domain.ParseDifficulty(rec.Difficulty); err == nil {
		b.WriteString("  " + DifficultyPill(d))
	} else if rec.Difficulty != "" {
		b.WriteString("  " + StyleDim.Render(rec.Difficulty))
	}
	b.WriteString("\n")

	if rec.Link != "" {
		b.WriteString(StyleBlue.Render(rec.Link) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", StyleYellow.Render("REASON:"), StyleFg.Render(rec.Reason)))

	if tag := sel.Result.Tag; tag != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Tags:"), StylePurple.Render(tag)))
	}

	title := "Next Problem"
	if sel.IsRevision {
		title = "Revision Due"
	}
	return RenderBox(title, strings.TrimRight(b.String(), "\n"))
}
