package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediacore/internal/application/usecase/abstraction"
	"mediacore/internal/domain/dto"
)

// UsageHandler serves the used-media report the admin UI's "unused" filter
// is built on. Every request runs a fresh scan; there is no cached
// reference index to go stale.
type UsageHandler struct {
	scanner abstraction.Scanner
}

func NewUsageHandler(scanner abstraction.Scanner) *UsageHandler {
	return &UsageHandler{scanner: scanner}
}

func (h *UsageHandler) Handle(c echo.Context) error {
	scan, err := h.scanner.Scan(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.UsedMediaReport{
		UsedMediaIDs: scan.AllReferencedIDs,
	})
}
