package generator

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanSummaryStripsFencesAndMarker(t *testing.T) {
	raw := "```\nTWITTER_TEXT: **Bold claim**\n\n  spaced   out   line  \n```"
	out, err := CleanSummary(raw, 280)
	require.NoError(t, err)
	assert.Equal(t, "Bold claim\nspaced out line", out)
}

func TestCleanSummaryRejectsEmpty(t *testing.T) {
	_, err := CleanSummary("```\n\n```", 280)
	assert.Error(t, err)

	_, err = CleanSummary("   ", 280)
	assert.Error(t, err)
}

func TestCleanSummaryCapsLength(t *testing.T) {
	raw := strings.Repeat("word ", 100)
	out, err := CleanSummary(raw, 80)
	require.NoError(t, err)
	assert.Equal(t, 80, utf8.RuneCountInString(out))
	assert.True(t, strings.HasSuffix(out, "..."))
}

func TestCleanSummaryPassThrough(t *testing.T) {
	out, err := CleanSummary("• BTC at $45,230\n• Volume up 8%", 280)
	require.NoError(t, err)
	assert.Equal(t, "• BTC at $45,230\n• Volume up 8%", out)
}
