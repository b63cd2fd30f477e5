// Package catalog loads the reference problem list and resolves free-text
// titles against it.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/avelusamy/leetcoach/internal/domain"
)

// Column headers the catalog file must carry. Matching is case-insensitive
// and ignores surrounding whitespace; extra columns are ignored.
const (
	colTitle      = "title"
	colDifficulty = "difficulty"
	colLink       = "leetcode question link"
)

// Load reads the problem catalog from a CSV file. The file is reference
// data loaded once per session; a missing file is a startup precondition
// failure reported by the caller.
func Load(path string) ([]domain.CatalogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return entries, nil
}

// Parse decodes catalog CSV content from r.
func Parse(r io.Reader) ([]domain.CatalogEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("catalog is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{colTitle, colDifficulty, colLink} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("catalog is missing required column %q", required)
		}
	}

	var entries []domain.CatalogEntry
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		title := field(row, idx[colTitle])
		if title == "" {
			continue
		}

		// Difficulty outside the known enum is kept as-is; the catalog is
		// reference data, not user input.
		difficulty, err := domain.ParseDifficulty(field(row, idx[colDifficulty]))
		if err != nil {
			difficulty = domain.Difficulty(field(row, idx[colDifficulty]))
		}

		entries = append(entries, domain.CatalogEntry{
			Title:      title,
			Difficulty: difficulty,
			Link:       field(row, idx[colLink]),
		})
	}

	return entries, nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
