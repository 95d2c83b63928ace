package generator

import (
	"context"
	"errors"
)

// Agent produces a tweet-ready summary from an answer body. It is the
// fallback path used when a transcript carries no pre-formatted social
// summary and heuristic extraction came up empty.
type Agent struct {
	llm LLMClient
}

func NewAgent(llm LLMClient) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Agent{llm: llm}, nil
}

// Summarize asks the model for a summary no longer than maxLength characters
// and normalizes the result.
func (a *Agent) Summarize(ctx context.Context, answerBody string, maxLength int) (string, error) {
	prompt := BuildSummaryPrompt(answerBody, maxLength)
	raw, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	return CleanSummary(raw, maxLength)
}
