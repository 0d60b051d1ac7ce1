package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"mediacore/internal/application/usecase/abstraction"
	"mediacore/internal/domain/dto"
	"mediacore/internal/presentation"
)

type ReplaceHandler struct {
	replacer abstraction.Replacer
}

func NewReplaceHandler(replacer abstraction.Replacer) *ReplaceHandler {
	return &ReplaceHandler{replacer: replacer}
}

// Handle swaps the file behind an existing asset id. The response carries
// the same id with fresh URLs, sizes and timestamps.
func (h *ReplaceHandler) Handle(c echo.Context) error {
	id := c.Param(presentation.IDParam)

	fileHeader, err := c.FormFile(presentation.FileField)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "multipart field \"file\" is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return writeError(c, err)
	}

	asset, err := h.replacer.Replace(c.Request().Context(), id, dto.ReplaceRequest{
		Bytes:            data,
		MimeType:         fileHeader.Header.Get(presentation.TypeKey),
		OriginalFilename: fileHeader.Filename,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DescriptorFromModel(asset))
}
