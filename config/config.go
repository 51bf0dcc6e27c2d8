package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultTextModel         = "gemini-3-flash-preview"
	DefaultImageModel        = "gemini-2.5-flash-image"
	DefaultTwitterBaseURL    = "https://api.twitter.com/2"
	DefaultTwitterTokenURL   = "https://api.twitter.com/oauth2/token"
	DefaultTrendsWOEID       = 1
	DefaultStatsUsername     = "Twitter"
	DefaultTrendsCacheTTL    = 15 * time.Minute
	DefaultTrendsRefreshCron = "*/15 * * * *"
)

type GeminiConfig struct {
	APIKey     string
	TextModel  string
	ImageModel string
}

type TwitterConfig struct {
	// BearerToken authorizes the read endpoints. When empty, APIKey and
	// APISecret may be exchanged for an app-only token at startup.
	BearerToken   string
	APIKey        string
	APISecret     string
	TokenURL      string
	BaseURL       string
	TrendsWOEID   int
	StatsUsername string
}

type RedisConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	DB       int
	TLS      bool
}

// Address returns host:port, or "" when Redis is not configured.
func (r RedisConfig) Address() string {
	if r.Host == "" {
		return ""
	}
	port := r.Port
	if port == "" {
		port = "6379"
	}
	return r.Host + ":" + port
}

type Config struct {
	Env               string
	Gemini            GeminiConfig
	Twitter           TwitterConfig
	Redis             RedisConfig
	TrendsCacheTTL    time.Duration
	TrendsRefreshCron string
}

func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// Load reads the given dotenv files (".env" when none are given) into the
// process environment and builds a Config from it. Missing files are ignored.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a getenv-style lookup.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Env: get("ENV", "dev"),
		Gemini: GeminiConfig{
			APIKey:     get("GEMINI_API_KEY", get("API_KEY", "")),
			TextModel:  get("GEMINI_TEXT_MODEL", DefaultTextModel),
			ImageModel: get("GEMINI_IMAGE_MODEL", DefaultImageModel),
		},
		Twitter: TwitterConfig{
			BearerToken:   get("TWITTER_BEARER_TOKEN", ""),
			APIKey:        get("TWITTER_KEY", ""),
			APISecret:     get("TWITTER_SECRET", ""),
			TokenURL:      get("TWITTER_TOKEN_URL", DefaultTwitterTokenURL),
			BaseURL:       strings.TrimRight(get("TWITTER_API_BASE", DefaultTwitterBaseURL), "/"),
			StatsUsername: strings.TrimPrefix(get("TWITTER_STATS_USERNAME", DefaultStatsUsername), "@"),
		},
		Redis: RedisConfig{
			Host:     get("REDIS_HOST", ""),
			Port:     get("REDIS_PORT", "6379"),
			Username: get("REDIS_USER", ""),
			Password: get("REDIS_PASSWORD", ""),
		},
		TrendsRefreshCron: get("TRENDS_REFRESH_CRON", DefaultTrendsRefreshCron),
	}
	cfg.Redis.TLS = cfg.IsProd()

	var err error
	if cfg.Twitter.TrendsWOEID, err = parseInt(get("TWITTER_TRENDS_WOEID", ""), DefaultTrendsWOEID); err != nil {
		return nil, fmt.Errorf("TWITTER_TRENDS_WOEID: %w", err)
	}
	if cfg.Redis.DB, err = parseInt(get("REDIS_DB", ""), 0); err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}
	if cfg.TrendsCacheTTL, err = parseDuration(get("TRENDS_CACHE_TTL", ""), DefaultTrendsCacheTTL); err != nil {
		return nil, fmt.Errorf("TRENDS_CACHE_TTL: %w", err)
	}

	return cfg, nil
}

func parseInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", raw)
	}
	return v, nil
}

func parseDuration(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", raw)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %q", raw)
	}
	return d, nil
}
