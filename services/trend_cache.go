package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"social-bridge/helpers"
	"social-bridge/models"

	"github.com/redis/go-redis/v9"
)

const trendsCacheKey = "socialbridge:trends"

// TrendCache keeps the last non-empty live trends list in Redis. A nil
// *TrendCache is valid and always misses.
type TrendCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewTrendCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *TrendCache {
	if client == nil {
		return nil
	}
	return &TrendCache{client: client, ttl: ttl, logger: helpers.LoggerOrDiscard(logger)}
}

// Load returns the cached trends. Redis errors and undecodable entries are
// reported as misses.
func (c *TrendCache) Load(ctx context.Context) ([]models.TrendingTopic, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, trendsCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Failed to read trends cache", "error", err)
		}
		return nil, false
	}

	var topics []models.TrendingTopic
	if err := json.Unmarshal(raw, &topics); err != nil {
		c.logger.Warn("Discarding malformed trends cache entry", "error", err)
		return nil, false
	}
	if len(topics) == 0 {
		return nil, false
	}
	return topics, true
}

// Store saves topics with the cache TTL. Empty lists are not stored.
func (c *TrendCache) Store(ctx context.Context, topics []models.TrendingTopic) error {
	if c == nil || len(topics) == 0 {
		return nil
	}

	raw, err := json.Marshal(topics)
	if err != nil {
		return fmt.Errorf("encode trends: %w", err)
	}
	if err := c.client.Set(ctx, trendsCacheKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("store trends: %w", err)
	}
	return nil
}
