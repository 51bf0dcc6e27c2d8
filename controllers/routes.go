package controllers

import (
	"log/slog"

	"social-bridge/views"

	"github.com/pocketbase/pocketbase/core"
)

// SetupRoutes registers every API route on the serve event router.
func SetupRoutes(se *core.ServeEvent, root *views.Root, logger *slog.Logger) {
	SetupPingRoutes(se)
	SetupViewRoutes(se, root, logger)
	SetupCreateRoutes(se, root, logger)
	SetupTrendsRoutes(se, root, logger)
}
