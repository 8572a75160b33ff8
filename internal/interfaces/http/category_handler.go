package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/velvetcart/admin-api/internal/application/dto"
	"github.com/velvetcart/admin-api/internal/application/usecase"
	"github.com/velvetcart/admin-api/internal/domain"
)

// CategoryHandler handles the category endpoints (protected).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler builds the handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Create a category
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "name; slug is derived when empty"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("INVALID_BODY", "invalid request body"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return categoryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Update a category
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "category id"
// @Param        body  body  dto.CategoryRequest  true  "category payload"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("INVALID_BODY", "invalid request body"))
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return categoryError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a category
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "category id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return categoryError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "category deleted"})
}

// List godoc
// @Summary      List categories
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return categoryError(c, err)
	}
	return c.JSON(out)
}

func categoryError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "invalid category data"))
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("NOT_FOUND", "category not found"))
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.Error("DUPLICATE", "a category with that slug already exists"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("INTERNAL", err.Error()))
	}
}
