package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/velvetcart/admin-api/internal/application/dto"
	"github.com/velvetcart/admin-api/internal/application/usecase"
	"github.com/velvetcart/admin-api/internal/domain"
)

// ShippingHandler handles the shipping configuration endpoints (protected).
type ShippingHandler struct {
	uc *usecase.ShippingUseCase
}

// NewShippingHandler builds the handler.
func NewShippingHandler(uc *usecase.ShippingUseCase) *ShippingHandler {
	return &ShippingHandler{uc: uc}
}

// Get godoc
// @Summary      Get shipping settings
// @Tags         shipping
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShippingSettingsResponse
// @Router       /api/shipping/settings [get]
func (h *ShippingHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update shipping settings
// @Tags         shipping
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShippingSettingsRequest  true  "flatRate, freeShippingThreshold, carrier"
// @Success      200   {object}  dto.ShippingSettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/shipping/settings [put]
func (h *ShippingHandler) Update(c *fiber.Ctx) error {
	var in dto.ShippingSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("INVALID_BODY", "invalid request body"))
	}
	out, err := h.uc.Update(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "shipping rates must not be negative"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}
