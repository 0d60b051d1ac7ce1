package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediacore/internal/application/usecase/abstraction"
	"mediacore/internal/domain/dto"
	"mediacore/internal/presentation"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{getter: getter}
}

func (h *GetHandler) Handle(c echo.Context) error {
	id := c.Param(presentation.IDParam)

	asset, err := h.getter.GetMedia(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DescriptorFromModel(asset))
}
