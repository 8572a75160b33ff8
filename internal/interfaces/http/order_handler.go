package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/velvetcart/admin-api/internal/application/dto"
	"github.com/velvetcart/admin-api/internal/application/usecase"
	"github.com/velvetcart/admin-api/internal/domain"
)

// OrderHandler handles the order endpoints (protected). Orders are created
// by the storefront; the admin panel reads them and moves their status.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler builds the handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List godoc
// @Summary      List orders
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "filter by status (pending, processing, shipped, delivered, cancelled)"
// @Param        page    query  int     false  "page (1-based)"
// @Param        limit   query  int     false  "page size"
// @Success      200  {object}  dto.OrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	status := c.Query("status")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 0)
	out, err := h.uc.List(status, page, limit)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get an order
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "order id"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Update order status
// @Description  Moves an order along pending → processing → shipped → delivered,
//               or to cancelled. Delivered and cancelled are terminal.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "order id"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "new status"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("INVALID_BODY", "invalid request body"))
	}
	if err := h.uc.UpdateStatus(c.Params("id"), in.Status); err != nil {
		return orderError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "order status updated"})
}

func orderError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "invalid order data"))
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("NOT_FOUND", "order not found"))
	case domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.Error("CONFLICT", "order is in a terminal status"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("INTERNAL", err.Error()))
	}
}
