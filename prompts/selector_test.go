package prompts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool() []Prompt {
	return []Prompt{
		{ID: "defi_1", Category: CategoryDeFi, Text: "Analyze DEX volume", Difficulty: "medium"},
		{ID: "defi_2", Category: CategoryDeFi, Text: "Compare lending rates", Difficulty: "hard"},
		{ID: "market_1", Category: CategoryMarket, Text: "BTC price drivers", Difficulty: "easy"},
	}
}

func TestNewSelectorRejectsEmptyPool(t *testing.T) {
	_, err := NewSelector(nil, "")
	assert.Error(t, err)
}

func TestPickCyclesThroughPoolBeforeRepeating(t *testing.T) {
	s, err := NewSelector(testPool(), "")
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		p, err := s.Pick("")
		require.NoError(t, err)
		assert.False(t, seen[p.ID], "prompt %s picked twice before pool exhaustion", p.ID)
		seen[p.ID] = true
	}
	assert.Equal(t, 0, s.Remaining(""))

	// Exhausted pool resets and picking continues.
	p, err := s.Pick("")
	require.NoError(t, err)
	assert.True(t, seen[p.ID])
	assert.Equal(t, 2, s.Remaining(""))
}

func TestPickCategoryFilter(t *testing.T) {
	s, err := NewSelector(testPool(), "")
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		p, err := s.Pick(CategoryDeFi)
		require.NoError(t, err)
		assert.Equal(t, CategoryDeFi, p.Category)
	}
}

func TestPickUnknownCategory(t *testing.T) {
	s, err := NewSelector(testPool(), "")
	require.NoError(t, err)

	_, err = s.Pick("nonexistent")
	assert.ErrorContains(t, err, "nonexistent")
}

func TestUsagePersistsAcrossSelectors(t *testing.T) {
	usageFile := filepath.Join(t.TempDir(), "state", "prompt_usage.json")

	s1, err := NewSelector(testPool(), usageFile)
	require.NoError(t, err)
	first, err := s1.Pick("")
	require.NoError(t, err)

	s2, err := NewSelector(testPool(), usageFile)
	require.NoError(t, err)
	assert.Equal(t, 2, s2.Remaining(""))
	second, err := s2.Pick("")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	var saved struct {
		UsedPrompts []string `json:"used_prompts"`
		TotalRuns   int      `json:"total_runs"`
	}
	data, err := os.ReadFile(usageFile)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Len(t, saved.UsedPrompts, 2)
	assert.Equal(t, 2, saved.TotalRuns)
}

func TestLoadPool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.json")
	body := `{"prompts": [{"id": "p1", "category": "market_insights", "text": "BTC overview"}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	pool, err := LoadPool(path)
	require.NoError(t, err)
	require.Len(t, pool, 1)
	assert.Equal(t, "p1", pool[0].ID)
}

func TestLoadPoolEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"prompts": []}`), 0o644))

	_, err := LoadPool(path)
	assert.ErrorContains(t, err, "no prompts")
}

func TestDefaultPromptsCoverEveryCategory(t *testing.T) {
	pool := DefaultPrompts()
	byCategory := map[string]int{}
	for _, p := range pool {
		byCategory[p.Category]++
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Text)
	}
	for _, c := range []string{CategoryDeFi, CategoryLayer2, CategoryMarket, CategoryUser} {
		assert.GreaterOrEqual(t, byCategory[c], 2, "category %s", c)
	}
}
