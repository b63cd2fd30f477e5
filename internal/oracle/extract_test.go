package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testReply struct {
	Title  string `json:"Title"`
	Reason string `json:"Reason"`
}

func TestExtractJSON_CleanObject(t *testing.T) {
	raw := `{"Title":"Two Sum","Reason":"warmup"}`
	got, err := ExtractJSON[testReply](raw)
	require.NoError(t, err)
	assert.Equal(t, "Two Sum", got.Title)
	assert.Equal(t, "warmup", got.Reason)
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	raw := "Here you go: {\"Title\":\"Two Sum\",\"Reason\":\"warmup\"} good luck!"
	got, err := ExtractJSON[testReply](raw)
	require.NoError(t, err)
	assert.Equal(t, "Two Sum", got.Title)
}

func TestExtractJSON_MarkdownFence(t *testing.T) {
	raw := "```json\n{\"Title\":\"Three Sum\",\"Reason\":\"step up\"}\n```"
	got, err := ExtractJSON[testReply](raw)
	require.NoError(t, err)
	assert.Equal(t, "Three Sum", got.Title)
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	type nested struct {
		Title string            `json:"Title"`
		Meta  map[string]string `json:"Meta"`
	}
	raw := `{"Title":"Two Sum","Meta":{"topic":"arrays"}}`
	got, err := ExtractJSON[nested](raw)
	require.NoError(t, err)
	assert.Equal(t, "arrays", got.Meta["topic"])
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"Title":"Weird {brace} title","Reason":"has \" escape"}`
	got, err := ExtractJSON[testReply](raw)
	require.NoError(t, err)
	assert.Equal(t, "Weird {brace} title", got.Title)
}

func TestExtractJSON_NoBraces(t *testing.T) {
	raw := "Sorry, I cannot recommend a problem today."
	_, err := ExtractJSON[testReply](raw)
	assert.ErrorIs(t, err, ErrMalformedResponse)

	preserved, ok := RawResponse(err)
	require.True(t, ok)
	assert.Equal(t, raw, preserved)
}

func TestExtractJSON_UnparseableSpan(t *testing.T) {
	raw := `{"Title": broken}`
	_, err := ExtractJSON[testReply](raw)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestExtractJSON_UnbalancedBraces(t *testing.T) {
	raw := `{"Title":"Two Sum"`
	_, err := ExtractJSON[testReply](raw)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
