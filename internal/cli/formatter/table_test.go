package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "LEVEL"},
		[][]string{
			{"Two Sum", "Easy"},
			{"Longest Palindromic Substring", "Medium"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, out, "Two Sum")
	assert.Contains(t, out, "Longest Palindromic Substring")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestRenderTable_TruncatesLongPlainCells(t *testing.T) {
	long := strings.Repeat("x", 80)
	out := RenderTable([]string{"NAME"}, [][]string{{long}})
	assert.NotContains(t, out, long)
	assert.Contains(t, out, "…")
}

func TestRenderTable_ShortRowsPadded(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"only"}})
	assert.Contains(t, out, "only")
}
