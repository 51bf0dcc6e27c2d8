package models

type UserMetrics struct {
	Username       string `json:"username"`
	FollowersCount int    `json:"followers_count"`
	TweetCount     int    `json:"tweet_count"`
}

type AnalyticsPoint struct {
	Date        string  `json:"date"`
	Followers   int     `json:"followers"`
	Engagement  float64 `json:"engagement"`
	Impressions int     `json:"impressions"`
}

var engagementSeries = []AnalyticsPoint{
	{Date: "Mon", Followers: 12400, Engagement: 4.2, Impressions: 85000},
	{Date: "Tue", Followers: 12550, Engagement: 4.5, Impressions: 92000},
	{Date: "Wed", Followers: 12800, Engagement: 5.1, Impressions: 105000},
	{Date: "Thu", Followers: 12950, Engagement: 3.8, Impressions: 88000},
	{Date: "Fri", Followers: 13200, Engagement: 4.9, Impressions: 110000},
	{Date: "Sat", Followers: 13500, Engagement: 6.2, Impressions: 130000},
	{Date: "Sun", Followers: 14100, Engagement: 7.1, Impressions: 155000},
}

func EngagementSeries() []AnalyticsPoint {
	return append([]AnalyticsPoint(nil), engagementSeries...)
}
