package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/velvetcart/admin-api/internal/application/dto"
	"github.com/velvetcart/admin-api/internal/application/report"
	"github.com/velvetcart/admin-api/internal/domain"
)

// ReportHandler serves the PDF downloads (protected).
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// OrderPDF godoc
// @Summary      Download an order receipt PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        orderId  path  string  true  "order id"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{orderId}/pdf [get]
func (h *ReportHandler) OrderPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.OrderPDF(c.Context(), c.Params("orderId"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.Error("NOT_FOUND", "order not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("INTERNAL", err.Error()))
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// LowStockPDF godoc
// @Summary      Download the low-stock report PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/admin/inventory/report.pdf [get]
func (h *ReportHandler) LowStockPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.LowStockPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("INTERNAL", err.Error()))
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
