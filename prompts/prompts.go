// Package prompts manages the pool of analysis prompts submitted to the chat
// product, with usage tracking so consecutive runs don't repeat themselves.
package prompts

// Prompt is one analysis question plus routing metadata.
type Prompt struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Text       string `json:"text"`
	Difficulty string `json:"difficulty,omitempty"`
}

// Categories used by the built-in pool.
const (
	CategoryDeFi   = "defi_protocols"
	CategoryLayer2 = "layer2_analysis"
	CategoryMarket = "market_insights"
	CategoryUser   = "user_behavior"
)

// DefaultPrompts is the built-in pool, used when no prompts file is
// configured. Texts ask for exactly the sections the extractor expects: a
// visualization and a tweet-ready summary.
func DefaultPrompts() []Prompt {
	return []Prompt{
		{ID: "defi-01", Category: CategoryDeFi, Text: "Analyze Ethereum DeFi protocol activity over the past 7 days. Which protocols saw the biggest user growth? Create a visualization showing the top 10 protocols by unique users.", Difficulty: "intermediate"},
		{ID: "defi-02", Category: CategoryDeFi, Text: "Compare TVL and transaction volume across the top 5 DeFi protocols this week. Which protocol is showing the most sustainable growth patterns?", Difficulty: "intermediate"},
		{ID: "defi-03", Category: CategoryDeFi, Text: "Analyze lending protocol utilization rates (Aave, Compound, MakerDAO). What are the current borrowing trends and which assets are most in demand?", Difficulty: "advanced"},
		{ID: "l2-01", Category: CategoryLayer2, Text: "Compare quality user behavior across Base, Arbitrum, and Optimism this month. Create a visualization showing daily active users and transaction patterns.", Difficulty: "intermediate"},
		{ID: "l2-02", Category: CategoryLayer2, Text: "Analyze gas fee trends and transaction throughput on Ethereum L2s. Which solution is providing the best cost-performance ratio?", Difficulty: "intermediate"},
		{ID: "l2-03", Category: CategoryLayer2, Text: "Analyze cross-chain bridge usage patterns. What are the most popular routes and how has volume changed over the past 30 days?", Difficulty: "advanced"},
		{ID: "market-01", Category: CategoryMarket, Text: "What's the most significant trend in crypto markets this week based on on-chain data? Focus on whale movements and institutional activity.", Difficulty: "advanced"},
		{ID: "market-02", Category: CategoryMarket, Text: "Analyze stablecoin supply and usage patterns. Which stablecoins are gaining adoption and what does this tell us about market sentiment?", Difficulty: "intermediate"},
		{ID: "market-03", Category: CategoryMarket, Text: "Examine Bitcoin and Ethereum on-chain metrics (active addresses, transaction volume, fees). What do these indicators suggest about network health?", Difficulty: "intermediate"},
		{ID: "user-01", Category: CategoryUser, Text: "Analyze new user onboarding patterns across major crypto platforms. What are the most common first transactions for new users?", Difficulty: "intermediate"},
		{ID: "user-02", Category: CategoryUser, Text: "Examine wallet creation and usage patterns. How many new wallets are being created daily and what's the typical usage lifecycle?", Difficulty: "intermediate"},
		{ID: "user-03", Category: CategoryUser, Text: "Analyze staking participation rates across different networks. Which networks have the highest staking adoption and why?", Difficulty: "advanced"},
	}
}
