package controllers

import (
	"log/slog"
	"net/http"

	"social-bridge/helpers"
	"social-bridge/views"

	"github.com/pocketbase/pocketbase/core"
)

type pickTrendRequest struct {
	Name string `json:"name"`
}

func SetupTrendsRoutes(se *core.ServeEvent, root *views.Root, logger *slog.Logger) {
	se.Router.GET("/api/v1/trends", func(e *core.RequestEvent) error {
		return LoadTrends(e, root.Trends)
	})
	se.Router.POST("/api/v1/trends/pick", func(e *core.RequestEvent) error {
		return PickTrend(e, root, logger)
	})
	se.Router.GET("/api/v1/stats", func(e *core.RequestEvent) error {
		return LoadStats(e, root.Stats)
	})
}

func LoadTrends(e *core.RequestEvent, screen *views.TrendsScreen) error {
	return helpers.Success(e, "", screen.Load(e.Request.Context()))
}

func PickTrend(e *core.RequestEvent, root *views.Root, logger *slog.Logger) error {
	var body pickTrendRequest
	if err := e.BindBody(&body); err != nil {
		return helpers.Error(e, logger, http.StatusBadRequest, "Invalid request body")
	}
	if err := root.PickTrend(body.Name); err != nil {
		return helpers.Error(e, logger, http.StatusBadRequest, err.Error())
	}
	return helpers.Success(e, "", map[string]interface{}{"view": root.Active(), "create": root.Create.Snapshot()})
}

func LoadStats(e *core.RequestEvent, screen *views.StatsScreen) error {
	return helpers.Success(e, "", screen.Load(e.Request.Context()))
}
