package history

// Capacity is the maximum number of persisted entries. Oldest entries
// beyond this are evicted unconditionally on append.
const Capacity = 5

// Item is one entry in the recent-checks log. Created exactly once when a
// check succeeds, never mutated afterwards.
type Item struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	InputSnippet string `json:"inputSnippet"`
	Score        int    `json:"score"`
	RiskLevel    string `json:"riskLevel"`
}
