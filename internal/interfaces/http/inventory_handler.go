package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/velvetcart/admin-api/internal/application/dto"
	"github.com/velvetcart/admin-api/internal/application/inventory"
	"github.com/velvetcart/admin-api/internal/domain"
)

// InventoryHandler handles the inventory management endpoints (protected,
// admin only).
type InventoryHandler struct {
	readUC   *inventory.InventoryUseCase
	adjustUC *inventory.AdjustmentUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(readUC *inventory.InventoryUseCase, adjustUC *inventory.AdjustmentUseCase) *InventoryHandler {
	return &InventoryHandler{readUC: readUC, adjustUC: adjustUC}
}

// Overview godoc
// @Summary      Inventory overview
// @Description  Per-product stock rows with derived status plus aggregate statistics.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OverviewResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/admin/inventory [get]
func (h *InventoryHandler) Overview(c *fiber.Ctx) error {
	out, err := h.readUC.Overview(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Low stock alerts
// @Description  Products at or below their threshold, with severity and the
//               specific variants that are low.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/admin/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.readUC.LowStockAlerts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Adjust variant stock
// @Description  Applies a signed delta to one variant and appends an audit
//               record in the same transaction.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustRequest  true  "productId, size, color, adjustment (non-zero), adjustmentType, reason"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/inventory/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("INVALID_BODY", "invalid request body"))
	}
	if err := h.adjustUC.Adjust(c.Context(), GetUserID(c), in); err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "stock adjusted"})
}

// Reorder godoc
// @Summary      Reorder stock
// @Description  Records a replenishment request and applies the quantity to
//               the named variant, or to every low-stock variant when size
//               and color are omitted.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReorderRequestDTO  true  "productId; size+color and quantity optional"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/inventory/reorder [post]
func (h *InventoryHandler) Reorder(c *fiber.Ctx) error {
	var in dto.ReorderRequestDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("INVALID_BODY", "invalid request body"))
	}
	msg, err := h.adjustUC.Reorder(c.Context(), GetUserID(c), in)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: msg})
}

// History godoc
// @Summary      Adjustment history
// @Description  Paginated audit trail, newest first, 50 records per page.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "page (1-based)"
// @Success      200  {object}  dto.HistoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/admin/inventory/history [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	out, err := h.readUC.History(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// Statistics godoc
// @Summary      Adjustment statistics
// @Description  Aggregates over a period: counts by type, daily trend and the
//               most adjusted products. Unknown periods fall back to 7d.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "24h, 7d, 30d or 90d"
// @Success      200  {object}  dto.StatisticsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/admin/inventory/statistics [get]
func (h *InventoryHandler) Statistics(c *fiber.Ctx) error {
	out, err := h.readUC.Statistics(c.Context(), c.Query("period"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

func inventoryError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "all adjustment fields are required and the delta must be non-zero"))
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("NOT_FOUND", "product or variant not found"))
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(dto.Error("INSUFFICIENT_STOCK", "adjustment would make stock negative"))
	case domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.Error("CONFLICT", "no low-stock variants to reorder"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("INTERNAL", err.Error()))
	}
}
