package cli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelusamy/leetcoach/internal/domain"
	"github.com/avelusamy/leetcoach/internal/notify"
	"github.com/avelusamy/leetcoach/internal/oracle"
	"github.com/avelusamy/leetcoach/internal/recommend"
	"github.com/avelusamy/leetcoach/internal/store"
)

type stubOracle struct {
	reply string
	err   error
	calls int
}

func (s *stubOracle) Generate(ctx context.Context, req oracle.Request) (*oracle.Response, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &oracle.Response{Text: s.reply, Model: "stub"}, nil
}

func newTestApp(t *testing.T, client oracle.Client) *App {
	t.Helper()
	dir := t.TempDir()
	log := zerolog.Nop()
	history := store.NewHistoryStore(filepath.Join(dir, "all_attempts.json"), log)
	selection := store.NewSelectionStore(filepath.Join(dir, "selected_problem.json"), log)
	catalog := []domain.CatalogEntry{
		{Title: "Two Sum", Difficulty: domain.DifficultyEasy, Link: "https://leetcode.com/problems/two-sum/"},
	}
	return &App{
		Selector:      recommend.NewSelector(client, history, selection, catalog, log),
		History:       history,
		Selection:     selection,
		Notifier:      notify.NewRunner("true", log),
		IsInteractive: func() bool { return false },
		Log:           log,
	}
}

func runCommand(app *App, args ...string) (string, error) {
	cmd := NewRootCmd(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAttemptCmd_RecordsAndPrintsRecommendation(t *testing.T) {
	client := &stubOracle{
		reply: `{"Title":"Valid Parentheses","Difficulty":"Easy","Link":"https://leetcode.com/problems/valid-parentheses/","Reason":"stack practice"}`,
	}
	app := newTestApp(t, client)

	out, err := runCommand(app,
		"attempt",
		"--title", "Two Sum",
		"--difficulty", "Easy",
		"--completed",
		"--tags", "array, hash-map",
		"--date", "2026-08-31",
	)
	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
	assert.Contains(t, out, "Valid Parentheses")
	assert.Contains(t, out, "stack practice")

	history, err := app.History.Load()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Two Sum", history[0].Title)
	assert.Equal(t, []string{"array", "hash-map"}, history[0].Tags)

	sel, err := app.Selection.Load()
	require.NoError(t, err)
	require.NotNil(t, sel)
	assert.Equal(t, "Valid Parentheses", sel.Title)
}

func TestAttemptCmd_RequiresTitleWhenNotInteractive(t *testing.T) {
	app := newTestApp(t, &stubOracle{})

	_, err := runCommand(app, "attempt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--title is required")
}

func TestAttemptCmd_DefaultsDateToToday(t *testing.T) {
	client := &stubOracle{
		reply: `{"Title":"X","Difficulty":"Easy","Link":"https://x","Reason":"r"}`,
	}
	app := newTestApp(t, client)

	_, err := runCommand(app, "attempt", "--title", "Two Sum")
	require.NoError(t, err)

	history, err := app.History.Load()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, time.Now().Format(domain.DateLayout), history[0].DateAttempted)
}

func TestAttemptCmd_RejectsBadDifficulty(t *testing.T) {
	app := newTestApp(t, &stubOracle{})

	_, err := runCommand(app, "attempt", "--title", "Two Sum", "--difficulty", "Impossible")
	require.Error(t, err)

	history, loadErr := app.History.Load()
	require.NoError(t, loadErr)
	assert.Empty(t, history)
}

func TestAttemptCmd_OracleFailureStillRecordsAttempt(t *testing.T) {
	client := &stubOracle{err: fmt.Errorf("post: %w", oracle.ErrUnavailable)}
	app := newTestApp(t, client)

	_, err := runCommand(app, "attempt", "--title", "Two Sum", "--date", "2026-08-31")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
	assert.Contains(t, err.Error(), "your attempt was recorded")

	history, loadErr := app.History.Load()
	require.NoError(t, loadErr)
	assert.Len(t, history, 1)

	sel, loadErr := app.Selection.Load()
	require.NoError(t, loadErr)
	assert.Nil(t, sel)
}

func TestDescribeSelectionError_PreservesRawReply(t *testing.T) {
	err := &oracle.ResponseError{Raw: "no json here", Err: oracle.ErrMalformedResponse}

	described := describeSelectionError(err)
	assert.Contains(t, described.Error(), "no json here")
	assert.ErrorIs(t, described, oracle.ErrMalformedResponse)
}

func TestAttemptFromValues_SplitsTags(t *testing.T) {
	rec, err := attemptFromValues(attemptFormValues{
		Title:      "  Two Sum  ",
		Difficulty: "medium",
		Tags:       "array,, hash-map ",
		Date:       "2026-08-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "Two Sum", rec.Title)
	assert.Equal(t, domain.DifficultyMedium, rec.Difficulty)
	assert.Equal(t, []string{"array", "hash-map"}, rec.Tags)
}
