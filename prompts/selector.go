package prompts

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

// Selector picks random un-used prompts from a pool and records usage in a
// JSON file, so repeated runs cycle through the whole pool before repeating.
type Selector struct {
	pool      []Prompt
	usageFile string
	usage     usageData
	rng       *rand.Rand
}

type usageData struct {
	UsedPrompts []string     `json:"used_prompts"`
	History     []usageEntry `json:"usage_history"`
	LastReset   string       `json:"last_reset,omitempty"`
	TotalRuns   int          `json:"total_runs"`
}

type usageEntry struct {
	PromptID string `json:"prompt_id"`
	UsedAt   string `json:"used_at"`
}

// NewSelector builds a Selector over pool, loading prior usage from
// usageFile if it exists. An empty usageFile disables persistence.
func NewSelector(pool []Prompt, usageFile string) (*Selector, error) {
	if len(pool) == 0 {
		return nil, errors.New("prompt pool is empty")
	}
	s := &Selector{
		pool:      pool,
		usageFile: usageFile,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if usageFile != "" {
		data, err := os.ReadFile(usageFile)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, &s.usage); err != nil {
				return nil, fmt.Errorf("invalid usage file %s: %w", usageFile, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// fresh pool
		default:
			return nil, err
		}
	}
	return s, nil
}

// LoadPool reads a prompts JSON file ({"prompts": [...]}).
func LoadPool(path string) ([]Prompt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var wrapper struct {
		Prompts []Prompt `json:"prompts"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("invalid prompts file %s: %w", path, err)
	}
	if len(wrapper.Prompts) == 0 {
		return nil, fmt.Errorf("prompts file %s contains no prompts", path)
	}
	return wrapper.Prompts, nil
}

// Pick returns a random prompt that has not been used yet, optionally
// filtered by category. When every matching prompt has been used, the pool
// is reset and picking starts over.
func (s *Selector) Pick(category string) (Prompt, error) {
	candidates := s.available(category)
	if len(candidates) == 0 {
		if len(s.filtered(category)) == 0 {
			return Prompt{}, fmt.Errorf("no prompts in category %q", category)
		}
		s.reset()
		candidates = s.available(category)
	}
	picked := candidates[s.rng.Intn(len(candidates))]

	s.usage.UsedPrompts = append(s.usage.UsedPrompts, picked.ID)
	s.usage.History = append(s.usage.History, usageEntry{
		PromptID: picked.ID,
		UsedAt:   time.Now().Format(time.RFC3339),
	})
	s.usage.TotalRuns++
	if err := s.save(); err != nil {
		return Prompt{}, err
	}
	return picked, nil
}

// Remaining reports how many prompts are still unused for a category filter
// ("" means all).
func (s *Selector) Remaining(category string) int {
	return len(s.available(category))
}

func (s *Selector) filtered(category string) []Prompt {
	if category == "" {
		return s.pool
	}
	var out []Prompt
	for _, p := range s.pool {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (s *Selector) available(category string) []Prompt {
	used := make(map[string]bool, len(s.usage.UsedPrompts))
	for _, id := range s.usage.UsedPrompts {
		used[id] = true
	}
	var out []Prompt
	for _, p := range s.filtered(category) {
		if !used[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

func (s *Selector) reset() {
	s.usage.UsedPrompts = nil
	s.usage.LastReset = time.Now().Format(time.RFC3339)
}

func (s *Selector) save() error {
	if s.usageFile == "" {
		return nil
	}
	if dir := filepath.Dir(s.usageFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(s.usage, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.usageFile, data, 0o644)
}
