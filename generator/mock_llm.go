package generator

import (
	"context"
	"strings"
)

// MockLLM is a placeholder implementation for local runs and tests; it never
// calls an external model.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	var sb strings.Builder
	sb.WriteString("• Mock summary of the analysis\n")
	sb.WriteString("• No live model was consulted\n")
	first := prompt.User
	if idx := strings.IndexByte(first, '\n'); idx > 0 {
		first = first[:idx]
	}
	sb.WriteString("• " + first)
	return sb.String(), nil
}
