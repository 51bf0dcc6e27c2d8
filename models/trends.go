package models

type TrendingTopic struct {
	Name           string `json:"name"`
	TweetVolume    *int   `json:"tweet_volume"`
	RelevanceScore int    `json:"relevance_score"`
	Reason         string `json:"reason"`
}

const (
	LiveTrendRelevance = 90
	LiveTrendReason    = "Direct API signal"
)

func volume(v int) *int { return &v }

var fallbackTrends = []TrendingTopic{
	{Name: "#AIRevolution", TweetVolume: volume(120000), RelevanceScore: 95, Reason: "High overlap with Codex AI features."},
	{Name: "$ETH ETFs", TweetVolume: volume(85000), RelevanceScore: 88, Reason: "Institutional crypto interest drives Bulk Trade usage."},
	{Name: "Web3Dev", TweetVolume: volume(45000), RelevanceScore: 92, Reason: "Core target audience for Codex."},
	{Name: "Liquidity Pools", TweetVolume: volume(32000), RelevanceScore: 90, Reason: "Directly related to Bulk Trade engine."},
	{Name: "TypeScript 5.4", TweetVolume: volume(12000), RelevanceScore: 85, Reason: "Relevant for Codex technical updates."},
}

// FallbackTrends returns the static list shown when no live trends are available.
func FallbackTrends() []TrendingTopic {
	list := make([]TrendingTopic, len(fallbackTrends))
	for i, t := range fallbackTrends {
		if t.TweetVolume != nil {
			t.TweetVolume = volume(*t.TweetVolume)
		}
		list[i] = t
	}
	return list
}
