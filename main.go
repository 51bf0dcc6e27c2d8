package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"social-bridge/commands"
	"social-bridge/config"
	"social-bridge/controllers"
	"social-bridge/helpers"
	"social-bridge/models"
	"social-bridge/services"
	"social-bridge/tasks"
	"social-bridge/views"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/redis/go-redis/v9"
)

var app *pocketbase.PocketBase

const upstreamTimeout = 60 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	app = helpers.CreateApp(cfg)
	httpClient := &http.Client{Timeout: upstreamTimeout}

	app.RootCmd.AddCommand(commands.NewDraftCommand(func(ctx context.Context) commands.Drafter {
		return newContentService(ctx, cfg, httpClient, app.Logger())
	}))

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		ctx := context.Background()
		logger := app.Logger()

		var rdb *redis.Client
		if cfg.Redis.Address() != "" {
			rdb, err = models.ConnectRedis(ctx, cfg.Redis)
			if err != nil {
				logger.Warn("Redis unavailable, trends cache disabled", "error", err)
				rdb = nil
			}
		}

		content := newContentService(ctx, cfg, httpClient, logger)
		twitter := services.NewTwitterService(services.TwitterConfig{
			BearerToken: services.ResolveBearerToken(ctx, cfg.Twitter, httpClient, logger),
			BaseURL:     cfg.Twitter.BaseURL,
			TrendsWOEID: cfg.Twitter.TrendsWOEID,
			HTTPClient:  httpClient,
			Cache:       services.NewTrendCache(rdb, cfg.TrendsCacheTTL, logger),
			Logger:      logger,
		})

		root := views.NewRoot(content, twitter, views.Options{
			StatsUsername: cfg.Twitter.StatsUsername,
			Logger:        logger,
		})
		controllers.SetupRoutes(se, root, logger)

		if rdb != nil {
			app.Cron().MustAdd(tasks.RefreshTrendsJob, cfg.TrendsRefreshCron, func() {
				tasks.HandleRefreshTrendsTask(context.Background(), logger, twitter)
			})
			app.OnTerminate().BindFunc(func(e *core.TerminateEvent) error {
				rdb.Close()
				return e.Next()
			})
		}

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

func newContentService(ctx context.Context, cfg *config.Config, httpClient *http.Client, logger *slog.Logger) *services.ContentService {
	generator, err := services.NewGeminiGenerator(ctx, cfg.Gemini.APIKey, httpClient)
	if err != nil {
		logger.Warn("Gemini client unavailable, drafts will use fallback text", "error", err)
		generator = nil
	}
	return services.NewContentService(generator, services.ContentConfig{
		TextModel:  cfg.Gemini.TextModel,
		ImageModel: cfg.Gemini.ImageModel,
		Logger:     logger,
	})
}
