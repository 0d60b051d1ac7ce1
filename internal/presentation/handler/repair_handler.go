package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediacore/internal/application/usecase/abstraction"
)

type RepairHandler struct {
	reconciler abstraction.Reconciler
}

func NewRepairHandler(reconciler abstraction.Reconciler) *RepairHandler {
	return &RepairHandler{reconciler: reconciler}
}

// Handle triggers a best-effort repair run. Per-id failures come back in the
// report body; only a failure to compute the orphan set at all is an error
// response.
func (h *RepairHandler) Handle(c echo.Context) error {
	report, err := h.reconciler.Repair(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}
