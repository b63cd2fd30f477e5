package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/avelusamy/leetcoach/internal/domain"
)

// SelectionStore holds the single most recent selection. Save fully
// overwrites the previous record; there is no version history.
type SelectionStore struct {
	path string
	log  zerolog.Logger
}

// NewSelectionStore creates a selection store backed by the file at path.
func NewSelectionStore(path string, log zerolog.Logger) *SelectionStore {
	return &SelectionStore{path: path, log: log}
}

// Save replaces the stored selection.
func (s *SelectionStore) Save(sel domain.SelectionResult) error {
	if err := writeJSON(s.path, sel); err != nil {
		return fmt.Errorf("saving selection: %w", err)
	}
	return nil
}

// Load returns the stored selection, or nil when none exists. Corrupt
// content is logged as a warning and reported as no selection.
func (s *SelectionStore) Load() (*domain.SelectionResult, error) {
	content, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading selection: %w", err)
	}

	var sel domain.SelectionResult
	if err := json.Unmarshal(content, &sel); err != nil {
		s.log.Warn().Str("path", s.path).Err(err).
			Msg("selection file is corrupt, treating as empty")
		return nil, nil
	}
	return &sel, nil
}
