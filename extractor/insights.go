package extractor

import (
	"regexp"
	"sort"
	"strings"
)

// InsightSet holds fragments pulled out of an answer body by keyword and
// pattern matching: raw numeric metrics plus the sentences most likely to
// carry a finding, a trend, or a trading recommendation. Regenerated on
// every extraction, never cached.
type InsightSet struct {
	Metrics         []string
	KeyFindings     []string
	Trends          []string
	Recommendations []string
}

// Empty reports whether extraction produced nothing usable for a post.
func (s InsightSet) Empty() bool {
	return len(s.Metrics) == 0 && len(s.KeyFindings) == 0 &&
		len(s.Trends) == 0 && len(s.Recommendations) == 0
}

const (
	maxMetrics         = 3
	maxKeyFindings     = 2
	maxTrends          = 2
	maxRecommendations = 1
)

// Metric patterns: currency amounts (with optional B/M/K shorthand folded in
// so "$2.1B" never also yields a bare "$2.1"), signed or bare percentages,
// spelled-out magnitudes, and "NNN USD" amounts.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$[\d,]*\d(?:\.\d+)?[BbMmKk]?`),
	regexp.MustCompile(`[+\-]?[\d,]*\d(?:\.\d+)?%`),
	regexp.MustCompile(`[\d,]*\d(?:\.\d+)?\s*(?:[Bb]illion|[Mm]illion|[Kk]\b)`),
	regexp.MustCompile(`[\d,]*\d(?:\.\d+)?\s*USD`),
}

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// Characters outside this allow-list are stripped from qualifying sentences
// before they go into a post.
var sentenceNoise = regexp.MustCompile(`[^\w\s$%.,!?-]`)

var findingKeywords = []string{
	"significant", "notable", "important", "key finding", "major",
	"breakthrough", "surge", "drop", "increase", "decrease",
	"all-time high", "all-time low", "record", "unprecedented",
	"bullish", "bearish", "momentum", "resistance", "support",
}

var trendKeywords = []string{
	"trending", "trend", "momentum", "direction", "pattern",
	"bullish", "bearish", "uptrend", "downtrend", "sideways",
	"breaking", "resistance", "support", "breakthrough",
}

var recommendationKeywords = []string{
	"recommend", "suggest", "consider", "should", "advise",
	"buy", "sell", "hold", "watch", "monitor", "target",
	"stop loss", "resistance", "support",
}

// ExtractInsights scans text for metrics and salient sentences. Pure and
// deterministic; matches keep their source order.
func ExtractInsights(text string) InsightSet {
	return InsightSet{
		Metrics:         extractMetrics(text),
		KeyFindings:     matchSentences(text, findingKeywords, 20, 100, maxKeyFindings),
		Trends:          matchSentences(text, trendKeywords, 15, 80, maxTrends),
		Recommendations: matchSentences(text, recommendationKeywords, 20, 90, maxRecommendations),
	}
}

type locatedMatch struct {
	pos  int
	text string
}

func extractMetrics(text string) []string {
	var found []locatedMatch
	for _, pattern := range metricPatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			found = append(found, locatedMatch{pos: loc[0], text: text[loc[0]:loc[1]]})
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	// Literal-string de-dup, first occurrence wins.
	seen := make(map[string]bool, len(found))
	var metrics []string
	for _, m := range found {
		if seen[m.text] {
			continue
		}
		seen[m.text] = true
		metrics = append(metrics, m.text)
		if len(metrics) == maxMetrics {
			break
		}
	}
	return metrics
}

// matchSentences splits text into sentences and keeps the ones that carry at
// least one keyword and whose trimmed length falls inside [minLen, maxLen].
// The window is a cheap stand-in for real NLP: too short means UI fragments,
// too long means run-on paragraphs.
func matchSentences(text string, keywords []string, minLen, maxLen, limit int) []string {
	var out []string
	for _, sentence := range sentenceEnd.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < minLen || len(sentence) > maxLen {
			continue
		}
		if !containsKeyword(sentence, keywords) {
			continue
		}
		clean := strings.TrimSpace(sentenceNoise.ReplaceAllString(sentence, ""))
		if clean == "" {
			continue
		}
		out = append(out, clean)
		if len(out) == limit {
			break
		}
	}
	return out
}

func containsKeyword(sentence string, keywords []string) bool {
	lower := strings.ToLower(sentence)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
