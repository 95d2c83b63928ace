package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMetricsBoundary(t *testing.T) {
	set := ExtractInsights("Price is $45,230 with +2.3% change and $2.1B volume")
	assert.Equal(t, []string{"$45,230", "+2.3%", "$2.1B"}, set.Metrics)
}

func TestExtractMetricsCapAtThree(t *testing.T) {
	set := ExtractInsights("$1 then $2 then $3 then $4 then $5")
	assert.Len(t, set.Metrics, 3)
	assert.Equal(t, []string{"$1", "$2", "$3"}, set.Metrics)
}

func TestExtractMetricsDeduplicatesLiterally(t *testing.T) {
	set := ExtractInsights("$45,230 again $45,230 and 12% and 12%")
	assert.Equal(t, []string{"$45,230", "12%"}, set.Metrics)
}

func TestExtractMetricsMagnitudeWords(t *testing.T) {
	set := ExtractInsights("Supply grew by 2.1 billion while fees hit 500 million")
	assert.Equal(t, []string{"2.1 billion", "500 million"}, set.Metrics)
}

func TestExtractKeyFindings(t *testing.T) {
	text := "Institutional buying shows significant momentum this week. The sky is blue. " +
		"Exchange reserves hit an all-time low for the year!"
	set := ExtractInsights(text)
	require.Len(t, set.KeyFindings, 2)
	assert.Contains(t, set.KeyFindings[0], "significant momentum")
	assert.Contains(t, set.KeyFindings[1], "all-time low")
}

func TestSentenceLengthWindowFiltersFragments(t *testing.T) {
	// Below the 20-char floor for findings.
	set := ExtractInsights("Major surge.")
	assert.Empty(t, set.KeyFindings)

	// Above the 100-char ceiling.
	long := "This significant development " + strings.Repeat("really ", 15) + "matters a great deal to everyone involved"
	set = ExtractInsights(long + ".")
	assert.Empty(t, set.KeyFindings)
}

func TestExtractTrendsAndRecommendations(t *testing.T) {
	text := "The chart shows a clear bullish trend with higher highs. " +
		"Consider buying on any dips below $44,500 for now. " +
		"Momentum remains strong across pairs."
	set := ExtractInsights(text)
	require.NotEmpty(t, set.Trends)
	assert.Contains(t, set.Trends[0], "bullish trend")
	require.Len(t, set.Recommendations, 1)
	assert.Contains(t, set.Recommendations[0], "Consider buying")
}

func TestSentenceCleaningStripsNoise(t *testing.T) {
	set := ExtractInsights("🚀 Bullish momentum is building across 📈 major markets now.")
	require.NotEmpty(t, set.Trends)
	assert.NotContains(t, set.Trends[0], "🚀")
	assert.NotContains(t, set.Trends[0], "📈")
}

func TestExtractInsightsEmptyInput(t *testing.T) {
	set := ExtractInsights("")
	assert.True(t, set.Empty())
}

func TestExtractInsightsDeterministic(t *testing.T) {
	text := "Price at $45,230 with significant momentum building steadily. Consider holding for now as trend continues."
	assert.Equal(t, ExtractInsights(text), ExtractInsights(text))
}
