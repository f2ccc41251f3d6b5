// Package api maps HTTP requests onto the recipe and auth services.
package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/recipegenie/backend/pkg/errors"
)

// respondError translates any pipeline failure into one HTTP response. All
// failures are logged before responding. serverMessage replaces the internal
// message for 5xx responses; the internal detail travels in "error".
func respondError(c *gin.Context, logger *zap.Logger, err error, serverMessage string) {
	appErr := apperrors.AsAppError(err)

	fields := []zap.Field{
		zap.String("code", string(appErr.Code)),
		zap.String("path", c.FullPath()),
		zap.Error(appErr),
	}
	if appErr.Raw != "" {
		fields = append(fields, zap.String("raw_response", appErr.Raw))
	}
	logger.Error("request failed", fields...)

	status := appErr.StatusCode()
	body := gin.H{"success": false, "message": appErr.Message}
	if len(appErr.FieldErrors) > 0 {
		body["errors"] = appErr.FieldErrors
	}
	if status >= 500 {
		body["message"] = serverMessage
		body["error"] = appErr.Message
	}
	c.JSON(status, body)
}
