package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/velvetcart/admin-api/internal/application/dto"
	"github.com/velvetcart/admin-api/internal/application/usecase"
	"github.com/velvetcart/admin-api/internal/domain"
)

// BannerHandler handles the storefront banner endpoints (protected).
type BannerHandler struct {
	uc *usecase.BannerUseCase
}

// NewBannerHandler builds the handler.
func NewBannerHandler(uc *usecase.BannerUseCase) *BannerHandler {
	return &BannerHandler{uc: uc}
}

// Create godoc
// @Summary      Create a banner
// @Tags         banners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BannerRequest  true  "title and imageUrl are required"
// @Success      201   {object}  dto.BannerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/banners [post]
func (h *BannerHandler) Create(c *fiber.Ctx) error {
	var in dto.BannerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("INVALID_BODY", "invalid request body"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return bannerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Update a banner
// @Tags         banners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "banner id"
// @Param        body  body  dto.BannerRequest  true  "banner payload"
// @Success      200   {object}  dto.BannerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/banners/{id} [put]
func (h *BannerHandler) Update(c *fiber.Ctx) error {
	var in dto.BannerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("INVALID_BODY", "invalid request body"))
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return bannerError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a banner
// @Tags         banners
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "banner id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/banners/{id} [delete]
func (h *BannerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return bannerError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "banner deleted"})
}

// List godoc
// @Summary      List banners
// @Tags         banners
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BannerListResponse
// @Router       /api/banners [get]
func (h *BannerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return bannerError(c, err)
	}
	return c.JSON(out)
}

func bannerError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "invalid banner data"))
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("NOT_FOUND", "banner not found"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("INTERNAL", err.Error()))
	}
}
