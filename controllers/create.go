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

type projectRequest struct {
	Project string `json:"project"`
}

type directionRequest struct {
	Direction string `json:"direction"`
}

func SetupCreateRoutes(se *core.ServeEvent, root *views.Root, logger *slog.Logger) {
	se.Router.GET("/api/v1/create", func(e *core.RequestEvent) error {
		return helpers.Success(e, "", root.Create.Snapshot())
	})
	se.Router.POST("/api/v1/create/project", func(e *core.RequestEvent) error {
		return SelectProject(e, root.Create, logger)
	})
	se.Router.POST("/api/v1/create/direction", func(e *core.RequestEvent) error {
		return SetDirection(e, root.Create, logger)
	})
	se.Router.POST("/api/v1/create/text", func(e *core.RequestEvent) error {
		return DraftPostText(e, root.Create, logger)
	})
	se.Router.POST("/api/v1/create/image", func(e *core.RequestEvent) error {
		return DraftPostImage(e, root.Create, logger)
	})
	se.Router.DELETE("/api/v1/create/draft", func(e *core.RequestEvent) error {
		return DismissDraft(e, root.Create)
	})
	se.Router.GET("/api/v1/share", func(e *core.RequestEvent) error {
		return ShareDraft(e, root.Create, logger)
	})
}

func SelectProject(e *core.RequestEvent, screen *views.CreateScreen, logger *slog.Logger) error {
	var body projectRequest
	if err := e.BindBody(&body); err != nil {
		return helpers.Error(e, logger, http.StatusBadRequest, "Invalid request body")
	}
	if body.Project == "" {
		return helpers.Error(e, logger, http.StatusBadRequest, "Project is required")
	}

	projectType, ok := models.ParseProjectType(body.Project)
	if !ok {
		return helpers.Error(e, logger, http.StatusBadRequest, "Unknown project: "+body.Project)
	}
	if err := screen.SelectProject(projectType); err != nil {
		return helpers.Error(e, logger, http.StatusBadRequest, err.Error())
	}

	return helpers.Success(e, "", screen.Snapshot())
}

func SetDirection(e *core.RequestEvent, screen *views.CreateScreen, logger *slog.Logger) error {
	var body directionRequest
	if err := e.BindBody(&body); err != nil {
		return helpers.Error(e, logger, http.StatusBadRequest, "Invalid request body")
	}
	screen.SetDirection(body.Direction)
	return helpers.Success(e, "", screen.Snapshot())
}

func DraftPostText(e *core.RequestEvent, screen *views.CreateScreen, logger *slog.Logger) error {
	snap, err := screen.DraftText(e.Request.Context())
	if errors.Is(err, views.ErrBusy) {
		return helpers.Error(e, logger, http.StatusConflict, err.Error())
	}
	return helpers.Success(e, "", snap)
}

func DraftPostImage(e *core.RequestEvent, screen *views.CreateScreen, logger *slog.Logger) error {
	snap, err := screen.DraftImage(e.Request.Context())
	if errors.Is(err, views.ErrBusy) {
		return helpers.Error(e, logger, http.StatusConflict, err.Error())
	}
	return helpers.Success(e, "", snap)
}

func DismissDraft(e *core.RequestEvent, screen *views.CreateScreen) error {
	if screen.Snapshot().Draft.Empty() {
		return helpers.Success(e, "Nothing to dismiss", screen.Snapshot())
	}
	dismissed := screen.Dismiss(e.Request.URL.Query().Get("id"))
	message := "Draft dismissed"
	if !dismissed {
		message = "Draft already replaced"
	}
	return helpers.Success(e, message, screen.Snapshot())
}

func ShareDraft(e *core.RequestEvent, screen *views.CreateScreen, logger *slog.Logger) error {
	snap := screen.Snapshot()
	if !snap.CanPublish {
		return helpers.Error(e, logger, http.StatusBadRequest, "Nothing to share, draft a post first")
	}
	return helpers.Success(e, "", map[string]interface{}{"url": snap.ShareURL, "text": snap.Draft.Text})
}
