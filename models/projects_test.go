package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProjectReturnsCopy(t *testing.T) {
	p, ok := GetProject(ProjectCodex)
	require.True(t, ok)
	p.KeyFeatures[0] = "changed"

	again, _ := GetProject(ProjectCodex)
	assert.Equal(t, "Real-time AI logic suggestions", again.KeyFeatures[0])
}

func TestGetProjectUnknown(t *testing.T) {
	_, ok := GetProject("Unknown")
	assert.False(t, ok)
}

func TestAllProjectsOrder(t *testing.T) {
	list := AllProjects()
	require.Len(t, list, 2)
	assert.Equal(t, "Codex", list[0].Name)
	assert.Equal(t, "Bulk Trade", list[1].Name)
	for _, p := range list {
		assert.Len(t, p.KeyFeatures, 4)
		assert.NotEmpty(t, p.Docs)
		assert.Len(t, p.Links, 2)
		assert.Len(t, p.ImageURLs, 2)
	}
}

func TestParseProjectType(t *testing.T) {
	tests := []struct {
		in   string
		want ProjectType
		ok   bool
	}{
		{"Codex", ProjectCodex, true},
		{"  codex ", ProjectCodex, true},
		{"Bulk Trade", ProjectBulkTrade, true},
		{"bulk_trade", ProjectBulkTrade, true},
		{"BULK-TRADE", ProjectBulkTrade, true},
		{"bulktrade", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseProjectType(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFallbackTrendsAreIndependentCopies(t *testing.T) {
	first := FallbackTrends()
	require.Len(t, first, 5)
	*first[0].TweetVolume = 1
	first[0].Name = "mutated"

	second := FallbackTrends()
	assert.Equal(t, "#AIRevolution", second[0].Name)
	assert.Equal(t, 120000, *second[0].TweetVolume)
}

func TestEngagementSeries(t *testing.T) {
	series := EngagementSeries()
	require.Len(t, series, 7)
	assert.Equal(t, "Mon", series[0].Date)
	assert.Equal(t, 155000, series[6].Impressions)
}

func TestDraftEmpty(t *testing.T) {
	assert.True(t, Draft{}.Empty())
	img := "data:image/png;base64,AA=="
	assert.False(t, Draft{Image: &img}.Empty())
	assert.False(t, Draft{Text: "hi"}.Empty())
}
