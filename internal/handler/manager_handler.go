package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pulse/internal/service"
)

// ManagerHandler serves the manager dashboard.
type ManagerHandler struct {
	statsService service.StatsService
}

// NewManagerHandler creates a new manager handler.
func NewManagerHandler(statsService service.StatsService) *ManagerHandler {
	return &ManagerHandler{statsService: statsService}
}

// Stats godoc
// @Summary Organization statistics and rep leaderboard
// @Tags manager
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ManagerStats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /manager/stats [get]
func (h *ManagerHandler) Stats(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	stats, err := h.statsService.ManagerStats(c.Request().Context(), who.ID)
	if err != nil {
		return handleError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
