package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"social-bridge/helpers"
	"social-bridge/models"
	"social-bridge/views"

	"github.com/pocketbase/pocketbase/core"
)

func SetupViewRoutes(se *core.ServeEvent, root *views.Root, logger *slog.Logger) {
	se.Router.GET("/api/v1/projects", func(e *core.RequestEvent) error {
		return ListProjects(e)
	})
	se.Router.GET("/api/v1/view", func(e *core.RequestEvent) error {
		return GetActiveView(e, root)
	})
	se.Router.POST("/api/v1/view/{view}", func(e *core.RequestEvent) error {
		return SelectView(e, root, logger)
	})
}

func ListProjects(e *core.RequestEvent) error {
	return helpers.Success(e, "", models.AllProjects())
}

func GetActiveView(e *core.RequestEvent, root *views.Root) error {
	return helpers.Success(e, "", map[string]interface{}{"view": root.Active()})
}

func SelectView(e *core.RequestEvent, root *views.Root, logger *slog.Logger) error {
	view, err := views.ParseView(e.Request.PathValue("view"))
	if err != nil {
		return helpers.Error(e, logger, http.StatusBadRequest, err.Error())
	}

	changed, err := root.Select(view)
	if errors.Is(err, views.ErrUnknownView) {
		return helpers.Error(e, logger, http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return helpers.Error(e, logger, http.StatusInternalServerError, "Failed to switch view")
	}

	return helpers.Success(e, "", map[string]interface{}{"view": root.Active(), "changed": changed})
}
