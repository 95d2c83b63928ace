package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cannedLLM struct {
	reply string
	err   error
	got   Prompt
}

func (c *cannedLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	c.got = prompt
	return c.reply, c.err
}

func TestNewAgentRequiresClient(t *testing.T) {
	_, err := NewAgent(nil)
	assert.Error(t, err)
}

func TestAgentSummarize(t *testing.T) {
	llm := &cannedLLM{reply: "```\n• BTC holding above $45K\n• Fees trending down\n```"}
	agent, err := NewAgent(llm)
	require.NoError(t, err)

	out, err := agent.Summarize(context.Background(), "BTC is holding above $45K while fees trend down.", 280)
	require.NoError(t, err)
	assert.Equal(t, "• BTC holding above $45K\n• Fees trending down", out)
	assert.Contains(t, llm.got.User, "BTC is holding above $45K")
	assert.Contains(t, llm.got.System, "under 280 characters")
}

func TestAgentSummarizePropagatesError(t *testing.T) {
	llm := &cannedLLM{err: errors.New("rate limited")}
	agent, err := NewAgent(llm)
	require.NoError(t, err)

	_, err = agent.Summarize(context.Background(), "body", 280)
	assert.ErrorContains(t, err, "rate limited")
}

func TestMockLLMIsDeterministicEnough(t *testing.T) {
	agent, err := NewAgent(MockLLM{})
	require.NoError(t, err)

	out, err := agent.Summarize(context.Background(), "Whale wallets accumulated 12K BTC.", 280)
	require.NoError(t, err)
	assert.Contains(t, out, "Mock summary of the analysis")
}
