package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentMarkerRoundTrip(t *testing.T) {
	body, err := Segment("I'll analyze X\n...body...\nCopy message\n")
	require.NoError(t, err)
	assert.Equal(t, "I'll analyze X\n...body...", body)
}

func TestSegmentNoStartMarker(t *testing.T) {
	_, err := Segment("no matching markers here")
	require.ErrorIs(t, err, ErrAnswerNotFound)
}

func TestSegmentEmptyTranscript(t *testing.T) {
	_, err := Segment("")
	require.ErrorIs(t, err, ErrAnswerNotFound)
}

func TestSegmentNoEndLabelKeepsRest(t *testing.T) {
	body, err := Segment("sidebar noise\nI'll analyze volume trends\nline one\nline two")
	require.NoError(t, err)
	assert.Equal(t, "I'll analyze volume trends\nline one\nline two", body)
}

func TestSegmentSkipsLeadingChrome(t *testing.T) {
	transcript := "Toggle sidebar\nRecent chats\nLet me start with the data\nresults here\nRegenerate response\ntrailing UI"
	body, err := Segment(transcript)
	require.NoError(t, err)
	assert.Equal(t, "Let me start with the data\nresults here", body)
}

func TestSegmentStartPhrasePriority(t *testing.T) {
	// "I'll analyze" outranks "Let me start" even when it appears later.
	transcript := "Let me start elsewhere\nfiller\nI'll analyze the real question\nanswer"
	body, err := Segment(transcript)
	require.NoError(t, err)
	assert.Equal(t, "I'll analyze the real question\nanswer", body)
}

func TestSegmentEndLabelMustMatchWholeLine(t *testing.T) {
	body, err := Segment("I'll analyze fees\nUsers often Copy message text manually\ndone\nCopy message")
	require.NoError(t, err)
	assert.Contains(t, body, "Users often Copy message text manually")
	assert.Equal(t, "I'll analyze fees\nUsers often Copy message text manually\ndone", body)
}

func TestSegmentUntilCustomLabels(t *testing.T) {
	body, err := SegmentUntil("I'll analyze X\ncontent\nShare\nmore", []string{"Share"})
	require.NoError(t, err)
	assert.Equal(t, "I'll analyze X\ncontent", body)
}

func TestSegmentPreservesInteriorBlankLines(t *testing.T) {
	body, err := Segment("I'll analyze X\n\nparagraph two\nCopy message")
	require.NoError(t, err)
	assert.Equal(t, "I'll analyze X\n\nparagraph two", body)
}
