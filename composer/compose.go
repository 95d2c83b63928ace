// Package composer assembles extracted insights into a length-budgeted post
// for Twitter/X. The assembled text never exceeds the caller's ceiling; the
// hashtag pool is packed greedily into whatever budget remains.
package composer

import (
	"strings"

	"auto_analysis_tweet_publisher/extractor"
)

// AnalysisType categorizes a run so the post can carry matching iconography.
type AnalysisType string

const (
	MarketAnalysis  AnalysisType = "market_analysis"
	VolumeAnalysis  AnalysisType = "volume_analysis"
	UserAnalysis    AnalysisType = "user_analysis"
	DeFiAnalysis    AnalysisType = "defi_analysis"
	UnknownAnalysis AnalysisType = "unknown"
)

// DefaultMaxLength is the platform post ceiling in characters.
const DefaultMaxLength = 280

var typeGlyphs = map[AnalysisType]string{
	MarketAnalysis:  "📈",
	VolumeAnalysis:  "📊",
	UserAnalysis:    "👥",
	DeFiAnalysis:    "🏦",
	UnknownAnalysis: "🔍",
}

// Hashtags is the fixed pool appended to posts, most important first.
var Hashtags = []string{
	"#CryptoAnalysis", "#FlipsideAI", "#BlockchainData",
	"#CryptoInsights", "#DeFi", "#Bitcoin", "#Ethereum",
	"#CryptoResearch", "#OnChainData", "#CryptoCharts",
}

// Compose builds the post text from an insight set. Deterministic: the same
// inputs always produce the same string, and the result is never longer than
// maxLength characters (counted in runes, the platform's unit).
func Compose(in extractor.InsightSet, analysisType AnalysisType, maxLength int) string {
	glyph, ok := typeGlyphs[analysisType]
	if !ok {
		glyph = typeGlyphs[UnknownAnalysis]
	}

	parts := []string{glyph + " Fresh crypto analysis from FlipsideAI:"}

	if len(in.Metrics) > 0 {
		metrics := in.Metrics
		if len(metrics) > 2 {
			metrics = metrics[:2]
		}
		parts = append(parts, "📊 Key metrics: "+strings.Join(metrics, " | "))
	}

	// One insight line: first finding preferred, first trend as fallback.
	insight := ""
	if len(in.KeyFindings) > 0 {
		insight = in.KeyFindings[0]
		parts = append(parts, "💡 "+truncate(insight, 60))
	} else if len(in.Trends) > 0 {
		insight = in.Trends[0]
		parts = append(parts, "📈 "+truncate(insight, 60))
	}

	if len(in.Trends) > 1 && in.Trends[1] != insight {
		parts = append(parts, "📈 "+truncate(in.Trends[1], 50))
	}

	if len(in.Recommendations) > 0 {
		parts = append(parts, "🎯 "+truncate(in.Recommendations[0], 40))
	}

	content := strings.Join(parts, "\n\n")
	content = packHashtags(content, maxLength)
	return capLength(content, maxLength)
}

// packHashtags greedily appends pool hashtags that still fit; it stops at
// the first one that does not, with no reordering or backtracking.
func packHashtags(content string, maxLength int) string {
	available := maxLength - runeLen(content) - 1

	var fitted []string
	for _, hashtag := range Hashtags {
		cost := runeLen(hashtag) + 1
		if cost > available {
			break
		}
		fitted = append(fitted, hashtag)
		available -= cost
	}
	if len(fitted) == 0 {
		return content
	}
	return content + "\n\n" + strings.Join(fitted, " ")
}

// capLength is the last-resort enforcement of the ceiling: hard truncation
// with a three-character ellipsis reservation.
func capLength(content string, maxLength int) string {
	runes := []rune(content)
	if len(runes) <= maxLength {
		return content
	}
	if maxLength <= 3 {
		return string(runes[:maxLength])
	}
	return string(runes[:maxLength-3]) + "..."
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

func runeLen(s string) int {
	return len([]rune(s))
}
