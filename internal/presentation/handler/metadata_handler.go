package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediacore/internal/application/usecase/abstraction"
	"mediacore/internal/domain/dto"
	"mediacore/internal/presentation"
)

type MetadataHandler struct {
	editor abstraction.Editor
}

func NewMetadataHandler(editor abstraction.Editor) *MetadataHandler {
	return &MetadataHandler{editor: editor}
}

// Handle patches the user-editable fields. Absent body fields stay
// untouched; identity and file fields are not reachable from this route.
func (h *MetadataHandler) Handle(c echo.Context) error {
	id := c.Param(presentation.IDParam)

	var patch dto.MetadataPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid patch body"})
	}

	asset, err := h.editor.UpdateMetadata(c.Request().Context(), id, patch)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DescriptorFromModel(asset))
}
