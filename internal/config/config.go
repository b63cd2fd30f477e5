// Package config resolves file locations, notification settings, and the
// startup preconditions for a session.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avelusamy/leetcoach/internal/oracle"
)

// Config holds all session settings.
type Config struct {
	CatalogPath   string
	HistoryPath   string
	SelectionPath string
	NotifyCmd     string
	NotifyTo      string
	Oracle        oracle.Config
}

// Load reads configuration from environment variables with defaults.
// Data files default to a shared data directory (LEETCOACH_DATA, else
// ~/.leetcoach) using the historical file names.
func Load() (Config, error) {
	dataDir := os.Getenv("LEETCOACH_DATA")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".leetcoach")
	}

	cfg := Config{
		CatalogPath:   filepath.Join(dataDir, "leetcode_question.csv"),
		HistoryPath:   filepath.Join(dataDir, "all_attempts.json"),
		SelectionPath: filepath.Join(dataDir, "selected_problem.json"),
		NotifyCmd:     os.Getenv("LEETCOACH_NOTIFY_CMD"),
		NotifyTo:      os.Getenv("LEETCOACH_NOTIFY_TO"),
		Oracle:        oracle.LoadConfig(),
	}

	if v := os.Getenv("LEETCOACH_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("LEETCOACH_HISTORY"); v != "" {
		cfg.HistoryPath = v
	}
	if v := os.Getenv("LEETCOACH_SELECTION"); v != "" {
		cfg.SelectionPath = v
	}

	return cfg, nil
}

// PreconditionError lists every missing startup requirement at once, so
// the user fixes them in one pass instead of one per run.
type PreconditionError struct {
	Missing []string
}

func (e *PreconditionError) Error() string {
	return "missing requirements: " + strings.Join(e.Missing, ", ")
}

// CheckPreconditions verifies the session can run: the catalog file must
// exist, the oracle credential must be set for the Gemini backend, and a
// notification destination must be configured. All failures are collected
// into one PreconditionError.
func (c Config) CheckPreconditions() error {
	var missing []string

	if _, err := os.Stat(c.CatalogPath); err != nil {
		missing = append(missing, fmt.Sprintf("catalog file %s", c.CatalogPath))
	}
	if c.Oracle.Provider == oracle.ProviderGemini && c.Oracle.APIKey == "" {
		missing = append(missing, "GOOGLE_API_KEY environment variable")
	}
	if c.NotifyTo == "" {
		missing = append(missing, "LEETCOACH_NOTIFY_TO environment variable")
	}

	if len(missing) > 0 {
		return &PreconditionError{Missing: missing}
	}
	return nil
}
