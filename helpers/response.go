package helpers

import (
	"log/slog"
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

type SuccessResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type ErrorResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

func Success(e *core.RequestEvent, message string, data interface{}) error {
	var successResponse SuccessResponse
	successResponse.Status = true
	successResponse.Message = message
	successResponse.Data = data
	return e.JSON(http.StatusOK, successResponse)
}

// Error writes the error envelope with the given status code. Server-side
// failures (5xx) are logged as errors, client mistakes as warnings.
func Error(e *core.RequestEvent, logger *slog.Logger, status int, message string) error {
	var errorResponse ErrorResponse
	errorResponse.Status = false
	errorResponse.Message = message

	logType := "warn"
	if status >= http.StatusInternalServerError {
		logType = "error"
	}
	Logging(logger, logType, message, "status", status, "path", e.Request.URL.Path)

	return e.JSON(status, errorResponse)
}
