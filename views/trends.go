package views

import (
	"context"
	"fmt"
	"math"
	"sync"

	"social-bridge/models"
)

type TrendItem struct {
	models.TrendingTopic
	VolumeLabel string `json:"volume_label"`
}

type TrendsSnapshot struct {
	Loading bool        `json:"loading"`
	Live    bool        `json:"live"`
	Trends  []TrendItem `json:"trends"`
}

type TrendsScreen struct {
	social SocialReader

	mu   sync.Mutex
	snap TrendsSnapshot
}

func NewTrendsScreen(social SocialReader) *TrendsScreen {
	return &TrendsScreen{social: social}
}

// Load fetches live trends and falls back to the static list when none
// come back.
func (s *TrendsScreen) Load(ctx context.Context) TrendsSnapshot {
	s.mu.Lock()
	s.snap.Loading = true
	s.mu.Unlock()

	topics := s.social.FetchTrends(ctx)
	live := len(topics) > 0
	if !live {
		topics = models.FallbackTrends()
	}

	items := make([]TrendItem, len(topics))
	for i, t := range topics {
		items[i] = TrendItem{TrendingTopic: t, VolumeLabel: VolumeLabel(t.TweetVolume)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = TrendsSnapshot{Live: live, Trends: items}
	return s.snapshotLocked()
}

func (s *TrendsScreen) Snapshot() TrendsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *TrendsScreen) snapshotLocked() TrendsSnapshot {
	snap := s.snap
	snap.Trends = append([]TrendItem(nil), s.snap.Trends...)
	return snap
}

// VolumeLabel renders a post volume in thousands ("120K"), or "Rising" when
// the volume is unknown or zero.
func VolumeLabel(volume *int) string {
	if volume == nil || *volume == 0 {
		return "Rising"
	}
	return fmt.Sprintf("%.0fK", math.Round(float64(*volume)/1000))
}
