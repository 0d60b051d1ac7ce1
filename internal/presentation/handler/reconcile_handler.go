package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediacore/internal/application/usecase/abstraction"
)

type ReconcileHandler struct {
	reconciler abstraction.Reconciler
}

func NewReconcileHandler(reconciler abstraction.Reconciler) *ReconcileHandler {
	return &ReconcileHandler{reconciler: reconciler}
}

func (h *ReconcileHandler) Handle(c echo.Context) error {
	report, err := h.reconciler.Report(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}
