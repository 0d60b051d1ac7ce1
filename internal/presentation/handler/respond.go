package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"mediacore/internal/apperror"
	"mediacore/pkg/logger"
)

// writeError maps a pipeline error onto the HTTP response. AppErrors carry
// their own status and client-safe body; anything else is a masked 500.
func writeError(c echo.Context, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= http.StatusInternalServerError {
			logger.Error("request failed", "type", appErr.Type, "err", appErr)
		}

		return c.JSON(appErr.Code, appErr)
	}

	logger.Error("request failed", "err", err)

	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": "internal error",
	})
}
