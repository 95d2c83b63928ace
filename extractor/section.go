package extractor

import "strings"

// Marker vocabulary for the two delimited sections the analysis prompt asks
// the model to emit. Exact product strings; extraction breaks if the prompt
// templates change them.
const (
	SocialSummaryMarker = "TWITTER_TEXT:"
	ChartMarker         = "HTML_CHART:"
)

var (
	socialSummaryEnds = []string{"HTML_CHART", "**HTML_CHART**", "Key Findings:"}
	chartEnds         = []string{"Key Findings:"}
)

// Section extracts the text following the line that contains startMarker:
// the remainder of the marker line plus every subsequent line, until a line
// starts with one of endMarkers or the body ends. The second return value is
// false when the marker never appears. Blank lines are dropped.
func Section(body, startMarker string, endMarkers []string) (string, bool) {
	lines := strings.Split(body, "\n")

	start := -1
	var firstChunk string
	for i, line := range lines {
		if idx := strings.Index(line, startMarker); idx >= 0 {
			start = i
			firstChunk = strings.TrimSpace(line[idx+len(startMarker):])
			break
		}
	}
	if start < 0 {
		return "", false
	}

	var out []string
	if firstChunk != "" {
		out = append(out, firstChunk)
	}
	for _, raw := range lines[start+1:] {
		line := strings.TrimSpace(raw)
		if hasEndMarker(line, endMarkers) {
			break
		}
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n")), true
}

func hasEndMarker(line string, endMarkers []string) bool {
	for _, marker := range endMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

// SocialSummary pulls the pre-formatted tweet text out of an answer body.
// Bold markers around the extracted text are leftovers of the chat's
// markdown rendering and are stripped.
func SocialSummary(body string) (string, bool) {
	text, ok := Section(body, SocialSummaryMarker, socialSummaryEnds)
	if !ok {
		return "", false
	}
	text = strings.TrimSpace(strings.Trim(text, "*"))
	if text == "" {
		return "", false
	}
	return text, true
}

// ChartMarkup pulls the embedded chart markup out of an answer body. The
// markup is opaque here; only the renderer ever looks inside it.
func ChartMarkup(body string) (string, bool) {
	text, ok := Section(body, ChartMarker, chartEnds)
	if !ok || text == "" {
		return "", false
	}
	return text, true
}
