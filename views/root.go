// Package views holds the server-side state of the three screens (create,
// trends, stats) and the root selector that switches between them.
package views

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"social-bridge/helpers"
	"social-bridge/models"
)

type View string

const (
	ViewCreate View = "create"
	ViewTrends View = "trends"
	ViewStats  View = "stats"
)

var (
	ErrUnknownView    = errors.New("unknown view")
	ErrUnknownProject = errors.New("unknown project")
	ErrBusy           = errors.New("a generation is already in progress")
)

func ParseView(raw string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(raw))); v {
	case ViewCreate, ViewTrends, ViewStats:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, raw)
}

// ContentGenerator drafts post text and images. Implementations never fail:
// they return a fallback text or a nil image instead.
type ContentGenerator interface {
	GenerateText(ctx context.Context, project models.Project, trend string) string
	GenerateImage(ctx context.Context, project models.Project, concept string) *string
}

// SocialReader reads trends and user metrics; empty or nil means no data.
type SocialReader interface {
	FetchTrends(ctx context.Context) []models.TrendingTopic
	FetchUserStats(ctx context.Context, username string) *models.UserMetrics
}

type Options struct {
	StatsUsername string
	Logger        *slog.Logger
}

// Root owns the active view selector and the three screens.
type Root struct {
	mu     sync.RWMutex
	active View
	logger *slog.Logger

	Create *CreateScreen
	Trends *TrendsScreen
	Stats  *StatsScreen
}

func NewRoot(content ContentGenerator, social SocialReader, opts Options) *Root {
	logger := helpers.LoggerOrDiscard(opts.Logger)
	return &Root{
		active: ViewCreate,
		logger: logger,
		Create: NewCreateScreen(content, logger),
		Trends: NewTrendsScreen(social),
		Stats:  NewStatsScreen(social, opts.StatsUsername),
	}
}

func (r *Root) Active() View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Select makes v the active view. Selecting the active view is a no-op; the
// returned bool reports whether the view changed.
func (r *Root) Select(v View) (bool, error) {
	if _, err := ParseView(string(v)); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == v {
		return false, nil
	}
	r.logger.Debug("View changed", "from", r.active, "to", v)
	r.active = v
	return true, nil
}

// PickTrend hands a trend to the create screen and switches to it.
func (r *Root) PickTrend(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("trend name is required")
	}
	r.Create.UseTrend(name)
	_, err := r.Select(ViewCreate)
	return err
}
