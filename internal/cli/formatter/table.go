package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// maxCellWidth bounds a single cell so one long problem title cannot
// blow out the whole table.
const maxCellWidth = 48

// RenderTable renders an aligned table with a header separator line.
// Headers use the Header style. Columns are padded to the widest cell
// in each column, measured by visible width so styled cells line up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		if w := lipgloss.Width(h); w > widths[i] {
			widths[i] = w
		}
	}
	for ri, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			rows[ri][i] = truncateCell(row[i])
			if w := lipgloss.Width(rows[ri][i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	for i, h := range headers {
		b.WriteString(StyleHeader.Render(h))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", pad(widths[i], h)+colGap))
		}
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(cell)
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", pad(widths[i], cell)+colGap))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func pad(width int, cell string) int {
	p := width - lipgloss.Width(cell)
	if p < 0 {
		return 0
	}
	return p
}

func truncateCell(cell string) string {
	if lipgloss.Width(cell) <= maxCellWidth {
		return cell
	}
	// Only plain cells are truncated. Styled cells are left alone so
	// escape sequences stay balanced.
	if strings.Contains(cell, "\x1b") {
		return cell
	}
	runes := []rune(cell)
	if len(runes) <= maxCellWidth {
		return cell
	}
	return string(runes[:maxCellWidth-1]) + "…"
}
