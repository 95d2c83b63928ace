package extractor

import (
	"errors"
	"strings"
)

// ErrAnswerNotFound is returned when no answer-start phrase exists in the
// transcript. Nothing downstream can run without an answer body.
var ErrAnswerNotFound = errors.New("no answer start marker found in transcript")

// AnswerStartPhrases are tried in order; the first phrase found anywhere in
// the transcript wins. These are literal strings the chat product emits at
// the top of an analysis answer.
var AnswerStartPhrases = []string{
	"I'll analyze",
	"Let me start",
}

// DefaultEndLabels are UI labels rendered right after the answer. A line
// equal to one of these (after trimming) terminates the answer body.
var DefaultEndLabels = []string{
	"Copy message",
	"Regenerate response",
	"Twitter Response Formats",
}

// Segment locates the assistant's answer inside a full page-text dump and
// returns it with surrounding UI chrome stripped. The end label line itself
// is excluded; if no end label appears the rest of the transcript is kept.
func Segment(transcript string) (string, error) {
	return SegmentUntil(transcript, DefaultEndLabels)
}

// SegmentUntil is Segment with a caller-supplied end label set. The label
// vocabulary is product copy and changes with the product UI, so it stays
// configurable rather than hard-wired.
func SegmentUntil(transcript string, endLabels []string) (string, error) {
	lines := strings.Split(transcript, "\n")

	start := -1
	for _, phrase := range AnswerStartPhrases {
		for i, line := range lines {
			if strings.Contains(line, phrase) {
				start = i
				break
			}
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return "", ErrAnswerNotFound
	}

	var out []string
	started := false
	for _, raw := range lines[start:] {
		line := strings.TrimSpace(raw)
		if line == "" && !started {
			continue
		}
		if isEndLabel(line, endLabels) {
			break
		}
		started = true
		out = append(out, line)
	}
	return strings.Join(out, "\n"), nil
}

func isEndLabel(line string, endLabels []string) bool {
	for _, label := range endLabels {
		if line == label {
			return true
		}
	}
	return false
}
