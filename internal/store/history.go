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

// HistoryStore is the append-only log of attempts, stored as a JSON array
// in a single file. Insertion order is chronological order, oldest first.
type HistoryStore struct {
	path string
	log  zerolog.Logger
}

// NewHistoryStore creates a history store backed by the file at path.
func NewHistoryStore(path string, log zerolog.Logger) *HistoryStore {
	return &HistoryStore{path: path, log: log}
}

// Load reads the full attempt history. A missing file is an empty history.
// Corrupt content is also treated as empty history: it is logged as a
// warning and never fatal.
func (s *HistoryStore) Load() ([]domain.AttemptRecord, error) {
	content, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	var records []domain.AttemptRecord
	if err := json.Unmarshal(content, &records); err != nil {
		s.log.Warn().Str("path", s.path).Err(err).
			Msg("history file is corrupt, starting from empty history")
		return nil, nil
	}
	return records, nil
}

// Append adds one attempt to the end of the log and rewrites the whole
// file. It returns the updated history so callers do not re-read the file
// they just wrote.
func (s *HistoryStore) Append(rec domain.AttemptRecord) ([]domain.AttemptRecord, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	records = append(records, rec)

	if err := writeJSON(s.path, records); err != nil {
		return nil, fmt.Errorf("appending to history: %w", err)
	}
	return records, nil
}
