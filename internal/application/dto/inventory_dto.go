package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VariantDTO is a (size, color) stock-keeping unit.
type VariantDTO struct {
	Size     string `json:"size"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

// InventoryItemDTO is one row of the inventory overview.
// TotalStock, StockValue and Status are server-computed; the UI only displays them.
type InventoryItemDTO struct {
	ProductID         string          `json:"productId"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Brand             string          `json:"brand"`
	Category          string          `json:"category"`
	Variants          []VariantDTO    `json:"variants"`
	TotalStock        int             `json:"totalStock"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	ReorderQuantity   int             `json:"reorderQuantity"`
	StockValue        decimal.Decimal `json:"stockValue"`
	Status            string          `json:"status"`
}

// InventoryStatisticsDTO aggregates the overview header cards.
type InventoryStatisticsDTO struct {
	TotalProducts   int             `json:"totalProducts"`
	TotalStock      int             `json:"totalStock"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	LowStockCount   int             `json:"lowStockCount"`
	OutOfStockCount int             `json:"outOfStockCount"`
}

// OverviewResponse envelope for GET /api/admin/inventory.
type OverviewResponse struct {
	Success    bool                   `json:"success"`
	Statistics InventoryStatisticsDTO `json:"statistics"`
	Inventory  []InventoryItemDTO     `json:"inventory"`
}

// LowStockAlertDTO is one derived alert row.
type LowStockAlertDTO struct {
	ProductID         string       `json:"productId"`
	SKU               string       `json:"sku"`
	Name              string       `json:"name"`
	Brand             string       `json:"brand"`
	TotalStock        int          `json:"totalStock"`
	LowStockThreshold int          `json:"lowStockThreshold"`
	AlertType         string       `json:"alertType"` // critical | warning | info
	LowVariants       []VariantDTO `json:"lowVariants"`
}

// AlertsResponse envelope for GET /api/admin/inventory/low-stock.
type AlertsResponse struct {
	Success bool               `json:"success"`
	Alerts  []LowStockAlertDTO `json:"alerts"`
}

// AdjustRequest body for POST /api/admin/inventory/adjust.
type AdjustRequest struct {
	ProductID      string `json:"productId"`
	Size           string `json:"size"`
	Color          string `json:"color"`
	Adjustment     int    `json:"adjustment"` // signed delta, never zero
	AdjustmentType string `json:"adjustmentType"`
	Reason         string `json:"reason"`
	Notes          string `json:"notes"`
}

// ReorderRequestDTO body for POST /api/admin/inventory/reorder.
// Empty Size/Color means "all low-stock variants"; nil Quantity means
// "use the product's default reorder quantity".
type ReorderRequestDTO struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  *int   `json:"quantity,omitempty"`
	Notes     string `json:"notes"`
}

// AdjustmentRecordDTO is one audit-trail row in the history tab.
type AdjustmentRecordDTO struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"productId"`
	ProductName      string    `json:"productName"`
	SKU              string    `json:"sku"`
	Size             string    `json:"size"`
	Color            string    `json:"color"`
	AdjustmentType   string    `json:"adjustmentType"`
	PreviousQuantity int       `json:"previousQuantity"`
	Adjustment       int       `json:"adjustment"`
	NewQuantity      int       `json:"newQuantity"`
	Reason           string    `json:"reason"`
	Notes            string    `json:"notes"`
	AdjustedBy       string    `json:"adjustedBy"`
	CreatedAt        time.Time `json:"createdAt"`
}

// HistoryResponse envelope for GET /api/admin/inventory/history.
type HistoryResponse struct {
	Success    bool                  `json:"success"`
	History    []AdjustmentRecordDTO `json:"history"`
	Pagination PaginationDTO         `json:"pagination"`
}

// AdjustmentTypeStatDTO one bar of the by-type breakdown.
type AdjustmentTypeStatDTO struct {
	AdjustmentType string `json:"adjustmentType"`
	Count          int    `json:"count"`
	TotalQuantity  int    `json:"totalQuantity"`
}

// DailyTrendPointDTO one point of the daily trend series.
type DailyTrendPointDTO struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// TopProductStatDTO one entry of the most-adjusted ranking.
type TopProductStatDTO struct {
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName"`
	SKU           string `json:"sku"`
	Count         int    `json:"count"`
	TotalQuantity int    `json:"totalQuantity"`
}

// PeriodStatisticsDTO pre-aggregated statistics for one period selector value.
type PeriodStatisticsDTO struct {
	Period      string                  `json:"period"` // 24h | 7d | 30d | 90d
	ByType      []AdjustmentTypeStatDTO `json:"byType"`
	DailyTrend  []DailyTrendPointDTO    `json:"dailyTrend"`
	TopProducts []TopProductStatDTO     `json:"topProducts"`
}

// StatisticsResponse envelope for GET /api/admin/inventory/statistics.
type StatisticsResponse struct {
	Success    bool                `json:"success"`
	Statistics PeriodStatisticsDTO `json:"statistics"`
}
