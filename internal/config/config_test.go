package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T, dataDir string) {
	t.Helper()
	t.Setenv("LEETCOACH_DATA", dataDir)
	t.Setenv("LEETCOACH_CATALOG", "")
	t.Setenv("LEETCOACH_HISTORY", "")
	t.Setenv("LEETCOACH_SELECTION", "")
	t.Setenv("LEETCOACH_NOTIFY_CMD", "")
	t.Setenv("LEETCOACH_NOTIFY_TO", "")
	t.Setenv("LEETCOACH_ORACLE_PROVIDER", "")
	t.Setenv("GOOGLE_API_KEY", "")
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	setBaseEnv(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "leetcode_question.csv"), cfg.CatalogPath)
	assert.Equal(t, filepath.Join(dir, "all_attempts.json"), cfg.HistoryPath)
	assert.Equal(t, filepath.Join(dir, "selected_problem.json"), cfg.SelectionPath)
}

func TestLoad_PathOverrides(t *testing.T) {
	setBaseEnv(t, t.TempDir())
	t.Setenv("LEETCOACH_CATALOG", "/tmp/cat.csv")
	t.Setenv("LEETCOACH_HISTORY", "/tmp/hist.json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cat.csv", cfg.CatalogPath)
	assert.Equal(t, "/tmp/hist.json", cfg.HistoryPath)
}

func TestCheckPreconditions_AllMissing(t *testing.T) {
	setBaseEnv(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	err = cfg.CheckPreconditions()
	require.Error(t, err)

	var pre *PreconditionError
	require.True(t, errors.As(err, &pre))
	assert.Len(t, pre.Missing, 3)
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
	assert.Contains(t, err.Error(), "LEETCOACH_NOTIFY_TO")
	assert.Contains(t, err.Error(), "leetcode_question.csv")
}

func TestCheckPreconditions_AllPresent(t *testing.T) {
	dir := t.TempDir()
	setBaseEnv(t, dir)
	t.Setenv("GOOGLE_API_KEY", "key")
	t.Setenv("LEETCOACH_NOTIFY_TO", "learner@example.com")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leetcode_question.csv"), []byte("Title,Difficulty,Leetcode Question Link\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.CheckPreconditions())
}

func TestCheckPreconditions_OllamaNeedsNoKey(t *testing.T) {
	dir := t.TempDir()
	setBaseEnv(t, dir)
	t.Setenv("LEETCOACH_ORACLE_PROVIDER", "ollama")
	t.Setenv("LEETCOACH_NOTIFY_TO", "learner@example.com")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leetcode_question.csv"), []byte("Title,Difficulty,Leetcode Question Link\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.CheckPreconditions())
}
