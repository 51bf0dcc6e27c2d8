package models

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"social-bridge/config"

	"github.com/redis/go-redis/v9"
)

// ErrEmptyAddress is returned when no Redis host is configured.
var ErrEmptyAddress = errors.New("redis address is required")

const redisPingTimeout = 5 * time.Second

// ConnectRedis opens a client and verifies it with a ping.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	addr := cfg.Address()
	if addr == "" {
		return nil, ErrEmptyAddress
	}

	options := &redis.Options{
		Addr:     addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		options.TLSConfig = &tls.Config{
			ServerName: cfg.Host,
		}
	}

	rdb := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	return rdb, nil
}
