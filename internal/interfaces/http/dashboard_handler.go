package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/velvetcart/admin-api/internal/application/analytics"
	"github.com/velvetcart/admin-api/internal/application/dto"
)

// DashboardHandler handles the dashboard summary endpoint (protected).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Dashboard summary
// @Description  Product counts, orders by status, today and month-to-date
//               revenue and the low-stock counter, aggregated in parallel.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}
