package controllers

import (
	"social-bridge/helpers"

	"github.com/pocketbase/pocketbase/core"
)

func SetupPingRoutes(se *core.ServeEvent) {
	se.Router.GET("/api/v1/ping", Ping)
}

// @Summary Health Check Endpoint
// @Schemes
// @Description Simple ping endpoint to check if the API is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} helpers.SuccessResponse "ping success"
// @Failure 400 {object} helpers.ErrorResponse "error"
// @Router /api/v1/ping [get]
func Ping(e *core.RequestEvent) error {
	return helpers.Success(e, "Ping success", nil)
}
