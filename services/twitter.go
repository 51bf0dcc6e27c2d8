package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"social-bridge/helpers"
	"social-bridge/models"

	"github.com/michimani/gotwi"
	"github.com/michimani/gotwi/fields"
	"github.com/michimani/gotwi/user/userlookup"
	"github.com/michimani/gotwi/user/userlookup/types"
	"golang.org/x/sync/singleflight"
)

const sharedCallTimeout = 30 * time.Second

type TwitterConfig struct {
	BearerToken string
	BaseURL     string
	TrendsWOEID int
	HTTPClient  *http.Client
	// Cache is optional.
	Cache  *TrendCache
	Logger *slog.Logger
}

// TwitterService reads trends and public user metrics from the X API.
// Every failure, including a missing bearer token, maps to an empty result.
type TwitterService struct {
	bearerToken string
	baseURL     string
	woeid       int
	httpClient  *http.Client
	users       *gotwi.Client
	cache       *TrendCache
	group       singleflight.Group
	logger      *slog.Logger
}

type trendsResponse struct {
	Data []struct {
		TrendName  string `json:"trend_name"`
		TweetCount *int   `json:"tweet_count"`
	} `json:"data"`
}

func NewTwitterService(cfg TwitterConfig) *TwitterService {
	s := &TwitterService{
		bearerToken: cfg.BearerToken,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		woeid:       cfg.TrendsWOEID,
		httpClient:  cfg.HTTPClient,
		cache:       cfg.Cache,
		logger:      helpers.LoggerOrDiscard(cfg.Logger),
	}
	if s.httpClient == nil {
		s.httpClient = http.DefaultClient
	}
	if s.woeid == 0 {
		s.woeid = 1
	}

	if s.bearerToken == "" {
		s.logger.Warn("TWITTER_BEARER_TOKEN is not set, live trends and stats are disabled")
		return s
	}

	users, err := gotwi.NewClientWithAccessToken(&gotwi.NewClientWithAccessTokenInput{
		HTTPClient:  s.httpClient,
		AccessToken: s.bearerToken,
	})
	if err != nil {
		s.logger.Error("Failed to create twitter client", "error", err)
		return s
	}
	s.users = users
	return s
}

// Enabled reports whether a bearer credential is configured.
func (s *TwitterService) Enabled() bool {
	return s.bearerToken != ""
}

// FetchTrends returns the cached or live trends, or an empty list.
func (s *TwitterService) FetchTrends(ctx context.Context) []models.TrendingTopic {
	if !s.Enabled() {
		return []models.TrendingTopic{}
	}

	if cached, ok := s.cache.Load(ctx); ok {
		return cached
	}

	topics := s.liveTrends(ctx)
	if len(topics) > 0 {
		if err := s.cache.Store(ctx, topics); err != nil {
			s.logger.Warn("Failed to cache trends", "error", err)
		}
	}
	return topics
}

// RefreshTrends fetches live trends bypassing the cache and stores a
// non-empty result. It returns the number of topics fetched.
func (s *TwitterService) RefreshTrends(ctx context.Context) (int, error) {
	if !s.Enabled() {
		return 0, nil
	}
	topics := s.liveTrends(ctx)
	if len(topics) == 0 {
		return 0, nil
	}
	if err := s.cache.Store(ctx, topics); err != nil {
		return len(topics), err
	}
	return len(topics), nil
}

func (s *TwitterService) liveTrends(ctx context.Context) []models.TrendingTopic {
	v, ok := s.shared(ctx, "trends", func(ctx context.Context) interface{} {
		return s.requestTrends(ctx)
	})
	topics, _ := v.([]models.TrendingTopic)
	if !ok || topics == nil {
		return []models.TrendingTopic{}
	}
	return slices.Clone(topics)
}

// shared runs fn once for concurrent callers of key. The upstream call is
// detached from the caller that started it and bounded by sharedCallTimeout;
// each caller stops waiting when its own ctx is done.
func (s *TwitterService) shared(ctx context.Context, key string, fn func(context.Context) interface{}) (interface{}, bool) {
	ch := s.group.DoChan(key, func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedCallTimeout)
		defer cancel()
		return fn(callCtx), nil
	})

	select {
	case res := <-ch:
		return res.Val, true
	case <-ctx.Done():
		s.logger.Debug("Stopped waiting for shared call", "key", key, "error", ctx.Err())
		return nil, false
	}
}

func (s *TwitterService) requestTrends(ctx context.Context) []models.TrendingTopic {
	endpoint := fmt.Sprintf("%s/trends/by/woeid/%d", s.baseURL, s.woeid)
	headers := map[string]string{"Authorization": "Bearer " + s.bearerToken}

	resp, err := helpers.MakeHTTPRequest[trendsResponse](ctx, s.httpClient, s.logger, http.MethodGet, endpoint, headers, nil, nil)
	if err != nil {
		s.logger.Warn("Failed to fetch trends", "woeid", s.woeid, "error", err)
		return []models.TrendingTopic{}
	}

	topics := make([]models.TrendingTopic, 0, len(resp.Data))
	for _, t := range resp.Data {
		if t.TrendName == "" {
			continue
		}
		topics = append(topics, models.TrendingTopic{
			Name:           t.TrendName,
			TweetVolume:    t.TweetCount,
			RelevanceScore: models.LiveTrendRelevance,
			Reason:         models.LiveTrendReason,
		})
	}
	return topics
}

// FetchUserStats returns the public metrics of username, or nil.
func (s *TwitterService) FetchUserStats(ctx context.Context, username string) *models.UserMetrics {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if s.users == nil || username == "" {
		return nil
	}

	v, _ := s.shared(ctx, "user:"+strings.ToLower(username), func(ctx context.Context) interface{} {
		return s.lookupUser(ctx, username)
	})
	metrics, _ := v.(*models.UserMetrics)
	if metrics == nil {
		return nil
	}
	copied := *metrics
	return &copied
}

func (s *TwitterService) lookupUser(ctx context.Context, username string) *models.UserMetrics {
	p := &types.GetByUsernameInput{
		Username:   username,
		UserFields: fields.UserFieldList{fields.UserFieldPublicMetrics},
	}

	res, err := userlookup.GetByUsername(ctx, s.users, p)
	if err != nil {
		s.logger.Warn("Failed to fetch user stats", "username", username, "error", err)
		return nil
	}
	if res == nil || res.Data.Username == nil {
		s.logger.Warn("User lookup returned no data", "username", username)
		return nil
	}

	metrics := &models.UserMetrics{Username: gotwi.StringValue(res.Data.Username)}
	if pm := res.Data.PublicMetrics; pm != nil {
		metrics.FollowersCount = gotwi.IntValue(pm.FollowersCount)
		metrics.TweetCount = gotwi.IntValue(pm.TweetCount)
	}
	return metrics
}
