package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"mediacore/internal/application/usecase/abstraction"
	"mediacore/internal/domain/dto"
	"mediacore/internal/presentation"
)

type ListHandler struct {
	lister abstraction.Lister
	getter abstraction.Getter
}

func NewListHandler(lister abstraction.Lister, getter abstraction.Getter) *ListHandler {
	return &ListHandler{lister: lister, getter: getter}
}

// Handle lists media for the admin library. ids is a comma-separated batch
// lookup that bypasses the filters; otherwise kind narrows to "image" or
// "video" and since/until are unix seconds on the creation time.
func (h *ListHandler) Handle(c echo.Context) error {
	if raw := c.QueryParam(presentation.IDsQuery); raw != "" {
		return h.handleBatch(c, raw)
	}

	filter := dto.ListFilter{
		Kind: c.QueryParam(presentation.KindQuery),
	}

	if raw := c.QueryParam(presentation.SinceQuery); raw != "" {
		ts, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid since timestamp"})
		}
		since := time.Unix(ts, 0)
		filter.Since = &since
	}

	if raw := c.QueryParam(presentation.UntilQuery); raw != "" {
		ts, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid until timestamp"})
		}
		until := time.Unix(ts, 0)
		filter.Until = &until
	}

	descriptors, err := h.lister.ListMedia(c.Request().Context(), filter)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, descriptors)
}

// handleBatch resolves an explicit id list. Unknown ids are omitted from
// the result rather than failing the whole request.
func (h *ListHandler) handleBatch(c echo.Context, raw string) error {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	assets, err := h.getter.GetManyMedia(c.Request().Context(), ids)
	if err != nil {
		return writeError(c, err)
	}

	descriptors := make([]dto.MediaDescriptor, 0, len(assets))
	for i := range assets {
		descriptors = append(descriptors, dto.DescriptorFromModel(&assets[i]))
	}

	return c.JSON(http.StatusOK, descriptors)
}
