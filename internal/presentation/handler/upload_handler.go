package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"mediacore/internal/application/usecase/abstraction"
	"mediacore/internal/domain/dto"
	"mediacore/internal/presentation"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Handle accepts one multipart upload and returns the created asset. The
// declared Content-Type of the part is advisory; the pipeline sniffs the
// bytes itself.
func (h *UploadHandler) Handle(c echo.Context) error {
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

	asset, err := h.uploader.Upload(c.Request().Context(), dto.UploadRequest{
		Bytes:            data,
		MimeType:         fileHeader.Header.Get(presentation.TypeKey),
		OriginalFilename: fileHeader.Filename,
		Title:            c.FormValue(presentation.TitleField),
		AltText:          c.FormValue(presentation.AltField),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.DescriptorFromModel(asset))
}
