package generator

import (
	"fmt"
	"strings"
)

// Prompt is the message pair sent to the LLM.
type Prompt struct {
	System string
	User   string
}

// BuildSummaryPrompt asks the model for a tweet-ready summary of an analysis
// answer. The format constraints mirror the ones the analysis prompt itself
// imposes on the chat product, so fallback output looks like a native
// TWITTER_TEXT section.
func BuildSummaryPrompt(answerBody string, maxLength int) Prompt {
	var sb strings.Builder
	sb.WriteString("You summarize crypto analysis results for Twitter. Output the summary text only, no explanations.\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- Concise bullet format with a bullet symbol, each line under 50 characters.\n")
	sb.WriteString(fmt.Sprintf("- Total length under %d characters.\n", maxLength))
	sb.WriteString("- Keep concrete numbers (prices, percentages, volumes) from the analysis.\n")
	sb.WriteString("- No hashtags, no links, no markdown formatting.\n")

	user := fmt.Sprintf("Analysis result:\n%s\n\nWrite the tweet summary.", answerBody)

	return Prompt{
		System: sb.String(),
		User:   user,
	}
}
