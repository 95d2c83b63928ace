package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = "intro\nTWITTER_TEXT: hello world\nHTML_CHART:\n<div>chart</div>\nKey Findings:\nmore text"

func TestSectionSocialSummary(t *testing.T) {
	text, ok := Section(sampleBody, "TWITTER_TEXT:", []string{"HTML_CHART", "**HTML_CHART**", "Key Findings:"})
	require.True(t, ok)
	assert.Equal(t, "hello world", text)
}

func TestSectionChartMarkup(t *testing.T) {
	text, ok := Section(sampleBody, "HTML_CHART:", []string{"Key Findings:"})
	require.True(t, ok)
	assert.Equal(t, "<div>chart</div>", text)
}

func TestSectionMissingMarker(t *testing.T) {
	_, ok := Section(sampleBody, "NOT_A_MARKER:", nil)
	assert.False(t, ok)
}

func TestSectionMultiLine(t *testing.T) {
	body := "HTML_CHART:\n<div>\n<script>draw()</script>\n</div>\nKey Findings:\nrest"
	text, ok := Section(body, "HTML_CHART:", []string{"Key Findings:"})
	require.True(t, ok)
	assert.Equal(t, "<div>\n<script>draw()</script>\n</div>", text)
}

func TestSocialSummaryStripsBoldMarkers(t *testing.T) {
	text, ok := SocialSummary("TWITTER_TEXT: **BTC holding $45K strong**\nKey Findings:\nrest")
	require.True(t, ok)
	assert.Equal(t, "BTC holding $45K strong", text)
}

func TestSectionsLocatedIndependently(t *testing.T) {
	// Chart before summary still extracts both; no ordering is assumed.
	body := "HTML_CHART:\n<div>c</div>\nKey Findings:\nstuff\nTWITTER_TEXT: summary line"
	chart, ok := ChartMarkup(body)
	require.True(t, ok)
	assert.Equal(t, "<div>c</div>", chart)

	summary, ok := SocialSummary(body)
	require.True(t, ok)
	assert.Equal(t, "summary line", summary)
}

func TestSocialSummaryAbsent(t *testing.T) {
	_, ok := SocialSummary("just an answer with no sections")
	assert.False(t, ok)
}

func TestChartMarkupAbsent(t *testing.T) {
	_, ok := ChartMarkup("TWITTER_TEXT: only a summary here")
	assert.False(t, ok)
}
