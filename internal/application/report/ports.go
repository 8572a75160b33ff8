package report

import (
	"context"
	"time"

	"github.com/velvetcart/admin-api/internal/application/dto"
	"github.com/velvetcart/admin-api/internal/domain/entity"
)

// PDFGenerator renders printable documents. Implemented by
// infrastructure/pdf with Maroto.
type PDFGenerator interface {
	// GenerateOrderPDF renders the packing slip / receipt for one order.
	GenerateOrderPDF(ctx context.Context, order *entity.Order) ([]byte, error)
	// GenerateLowStockPDF renders the low-stock report the purchasing
	// team prints before placing restock orders.
	GenerateLowStockPDF(ctx context.Context, alerts []dto.LowStockAlertDTO, generatedAt time.Time) ([]byte, error)
}
