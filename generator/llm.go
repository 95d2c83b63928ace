package generator

import "context"

// LLMClient abstracts the chat-completion backend so it can be swapped or
// mocked in tests.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings carries the base configuration for concrete implementations.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}
