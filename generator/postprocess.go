package generator

import (
	"errors"
	"strings"
)

// CleanSummary validates and normalizes model output into post-ready text:
// code fences and echoed section markers are stripped, whitespace per line
// is collapsed, and the result is capped at maxLength characters.
func CleanSummary(raw string, maxLength int) (string, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		// Models occasionally echo the section marker they were shown.
		line = strings.TrimSpace(strings.TrimPrefix(line, "TWITTER_TEXT:"))
		line = strings.Trim(line, "*")
		if line == "" {
			continue
		}
		lines = append(lines, strings.Join(strings.Fields(line), " "))
	}
	if len(lines) == 0 {
		return "", errors.New("model returned empty summary")
	}

	out := strings.Join(lines, "\n")
	runes := []rune(out)
	if len(runes) > maxLength {
		out = string(runes[:maxLength-3]) + "..."
	}
	return out, nil
}
