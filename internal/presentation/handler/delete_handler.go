package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediacore/internal/application/usecase/abstraction"
	"mediacore/internal/presentation"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{deleter: deleter}
}

// Handle deletes an asset. Deleting an already-absent id answers the same
// way as the first delete.
func (h *DeleteHandler) Handle(c echo.Context) error {
	id := c.Param(presentation.IDParam)

	if err := h.deleter.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}
