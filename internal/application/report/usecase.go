// Package report builds downloadable PDF documents for the admin panel.
package report

import (
	"context"
	"fmt"
	"time"

	appinventory "github.com/velvetcart/admin-api/internal/application/inventory"
	"github.com/velvetcart/admin-api/internal/domain"
	"github.com/velvetcart/admin-api/internal/domain/repository"
)

// ReportUseCase produces the order receipt and low-stock report downloads.
type ReportUseCase struct {
	orderRepo   repository.OrderRepository
	inventoryUC *appinventory.InventoryUseCase
	generator   PDFGenerator
}

// NewReportUseCase builds the use case.
func NewReportUseCase(orderRepo repository.OrderRepository, inventoryUC *appinventory.InventoryUseCase, generator PDFGenerator) *ReportUseCase {
	return &ReportUseCase{orderRepo: orderRepo, inventoryUC: inventoryUC, generator: generator}
}

// OrderPDF renders the receipt for one order. The filename is derived from
// the order number so the browser download is self-describing.
func (uc *ReportUseCase) OrderPDF(ctx context.Context, orderID string) (data []byte, filename string, err error) {
	if orderID == "" {
		return nil, "", domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", err
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	data, err = uc.generator.GenerateOrderPDF(ctx, order)
	if err != nil {
		return nil, "", fmt.Errorf("order pdf: %w", err)
	}
	return data, fmt.Sprintf("order-%s.pdf", order.Number), nil
}

// LowStockPDF renders the current low-stock alerts as a printable report.
func (uc *ReportUseCase) LowStockPDF(ctx context.Context) (data []byte, filename string, err error) {
	alerts, err := uc.inventoryUC.LowStockAlerts(ctx)
	if err != nil {
		return nil, "", err
	}
	now := time.Now()
	data, err = uc.generator.GenerateLowStockPDF(ctx, alerts.Alerts, now)
	if err != nil {
		return nil, "", fmt.Errorf("low stock pdf: %w", err)
	}
	return data, fmt.Sprintf("low-stock-%s.pdf", now.Format("2006-01-02")), nil
}
