package tasks

import (
	"context"
	"log/slog"
	"time"

	"social-bridge/helpers"
)

const (
	RefreshTrendsJob = "Refresh Trends"

	refreshTimeout = 30 * time.Second
)

// TrendRefresher re-fetches live trends into the cache.
type TrendRefresher interface {
	Enabled() bool
	RefreshTrends(ctx context.Context) (int, error)
}

// HandleRefreshTrendsTask runs one cache refresh. It never fails the cron
// scheduler: errors are logged.
func HandleRefreshTrendsTask(ctx context.Context, logger *slog.Logger, refresher TrendRefresher) {
	if !refresher.Enabled() {
		helpers.Logging(logger, "debug", "Skipping trends refresh, no bearer token", "type", "job", "job", RefreshTrendsJob)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	count, err := refresher.RefreshTrends(ctx)
	if err != nil {
		FailedJob(logger, RefreshTrendsJob, err)
		return
	}
	SuccessJob(logger, RefreshTrendsJob, "topics", count)
}

func FailedJob(logger *slog.Logger, job string, err error) {
	helpers.Logging(logger, "error", "Failed to run "+job, "type", "job", "job", job, "error", err.Error())
}

func SuccessJob(logger *slog.Logger, job string, args ...any) {
	helpers.Logging(logger, "info", "Successfully ran "+job, append([]any{"type", "job", "job", job}, args...)...)
}
