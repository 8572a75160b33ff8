package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/velvetcart/admin-api/internal/application/dto"
	domaininv "github.com/velvetcart/admin-api/internal/domain/inventory"
	"github.com/velvetcart/admin-api/internal/domain/repository"
)

// History pages are fixed at 50 records regardless of the limit query param.
const historyPageSize = 50

// InventoryUseCase serves the read side of the inventory tabs: overview,
// low-stock alerts, paginated history and period statistics.
type InventoryUseCase struct {
	productRepo    repository.ProductRepository
	categoryRepo   repository.CategoryRepository
	adjustmentRepo repository.AdjustmentRepository
	analyticsRepo  repository.AnalyticsRepository
	cache          OverviewCache
}

// NewInventoryUseCase builds the use case. cache may be nil.
func NewInventoryUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	adjustmentRepo repository.AdjustmentRepository,
	analyticsRepo repository.AnalyticsRepository,
	cache OverviewCache,
) *InventoryUseCase {
	return &InventoryUseCase{
		productRepo:    productRepo,
		categoryRepo:   categoryRepo,
		adjustmentRepo: adjustmentRepo,
		analyticsRepo:  analyticsRepo,
		cache:          cache,
	}
}

// Overview returns the full inventory snapshot with per-item derived status
// and aggregate statistics. Served from the cache when warm; mutations
// invalidate it.
func (uc *InventoryUseCase) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, err
	}
	categoryNames, err := uc.categoryNames()
	if err != nil {
		return nil, err
	}

	items := make([]dto.InventoryItemDTO, 0, len(products))
	stats := dto.InventoryStatisticsDTO{TotalValue: decimal.Zero}
	for _, p := range products {
		status := domaininv.Status(p)
		total := p.TotalStock()
		value := p.StockValue()

		variants := make([]dto.VariantDTO, 0, len(p.Variants))
		for _, v := range p.Variants {
			variants = append(variants, dto.VariantDTO{Size: v.Size, Color: v.Color, Quantity: v.Quantity})
		}
		items = append(items, dto.InventoryItemDTO{
			ProductID:         p.ID,
			SKU:               p.SKU,
			Name:              p.Name,
			Brand:             p.Brand,
			Category:          categoryNames[p.CategoryID],
			Variants:          variants,
			TotalStock:        total,
			LowStockThreshold: p.LowStockThreshold,
			ReorderQuantity:   p.ReorderQuantity,
			StockValue:        value,
			Status:            status,
		})

		stats.TotalProducts++
		stats.TotalStock += total
		stats.TotalValue = stats.TotalValue.Add(value)
		switch status {
		case domaininv.StatusOutOfStock:
			stats.OutOfStockCount++
		case domaininv.StatusLowStock, domaininv.StatusReorder:
			stats.LowStockCount++
		}
	}

	overview := &dto.OverviewResponse{Success: true, Statistics: stats, Inventory: items}
	if uc.cache != nil {
		uc.cache.Set(ctx, overview)
	}
	return overview, nil
}

// LowStockAlerts derives the alert list: every product whose total stock or
// individual variants fall under the threshold, classified by severity.
func (uc *InventoryUseCase) LowStockAlerts(ctx context.Context) (*dto.AlertsResponse, error) {
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.LowStockAlertDTO, 0)
	for _, p := range products {
		severity, ok := domaininv.Severity(p)
		if !ok {
			continue
		}
		low := domaininv.LowVariants(p)
		lowDTOs := make([]dto.VariantDTO, 0, len(low))
		for _, v := range low {
			lowDTOs = append(lowDTOs, dto.VariantDTO{Size: v.Size, Color: v.Color, Quantity: v.Quantity})
		}
		alerts = append(alerts, dto.LowStockAlertDTO{
			ProductID:         p.ID,
			SKU:               p.SKU,
			Name:              p.Name,
			Brand:             p.Brand,
			TotalStock:        p.TotalStock(),
			LowStockThreshold: p.LowStockThreshold,
			AlertType:         severity,
			LowVariants:       lowDTOs,
		})
	}
	return &dto.AlertsResponse{Success: true, Alerts: alerts}, nil
}

// History returns one fixed-size page of the audit trail, newest first.
// page starts at 1; out-of-range pages return an empty list, not an error.
func (uc *InventoryUseCase) History(ctx context.Context, page int) (*dto.HistoryResponse, error) {
	if page < 1 {
		page = 1
	}
	total, err := uc.adjustmentRepo.Count()
	if err != nil {
		return nil, err
	}
	records, err := uc.adjustmentRepo.List(historyPageSize, (page-1)*historyPageSize)
	if err != nil {
		return nil, err
	}

	history := make([]dto.AdjustmentRecordDTO, 0, len(records))
	for _, r := range records {
		history = append(history, dto.AdjustmentRecordDTO{
			ID:               r.ID,
			ProductID:        r.ProductID,
			ProductName:      r.ProductName,
			SKU:              r.SKU,
			Size:             r.Size,
			Color:            r.Color,
			AdjustmentType:   r.AdjustmentType,
			PreviousQuantity: r.PreviousQuantity,
			Adjustment:       r.Adjustment,
			NewQuantity:      r.NewQuantity,
			Reason:           r.Reason,
			Notes:            r.Notes,
			AdjustedBy:       r.AdjustedBy,
			CreatedAt:        r.CreatedAt,
		})
	}

	totalPages := (total + historyPageSize - 1) / historyPageSize
	return &dto.HistoryResponse{
		Success: true,
		History: history,
		Pagination: dto.PaginationDTO{
			Page:       page,
			Limit:      historyPageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// ParsePeriod maps a period selector value to its duration. Unknown values
// fall back to 7d so the analytics tab stays error-safe.
func ParsePeriod(period string) (string, time.Duration) {
	switch period {
	case "24h":
		return "24h", 24 * time.Hour
	case "7d":
		return "7d", 7 * 24 * time.Hour
	case "30d":
		return "30d", 30 * 24 * time.Hour
	case "90d":
		return "90d", 90 * 24 * time.Hour
	}
	return "7d", 7 * 24 * time.Hour
}

// Statistics returns the pre-aggregated adjustment statistics for the period:
// by-type breakdown, daily trend and the top-5 most-adjusted products.
func (uc *InventoryUseCase) Statistics(ctx context.Context, period string) (*dto.StatisticsResponse, error) {
	normalized, window := ParsePeriod(period)
	end := time.Now()
	start := end.Add(-window)

	byType, err := uc.analyticsRepo.CountAdjustmentsByType(ctx, start, end)
	if err != nil {
		return nil, err
	}
	trend, err := uc.analyticsRepo.DailyAdjustmentTrend(ctx, start, end)
	if err != nil {
		return nil, err
	}
	top, err := uc.analyticsRepo.TopAdjustedProducts(ctx, start, end, 5)
	if err != nil {
		return nil, err
	}

	stats := dto.PeriodStatisticsDTO{
		Period:      normalized,
		ByType:      make([]dto.AdjustmentTypeStatDTO, 0, len(byType)),
		DailyTrend:  make([]dto.DailyTrendPointDTO, 0, len(trend)),
		TopProducts: make([]dto.TopProductStatDTO, 0, len(top)),
	}
	for _, t := range byType {
		stats.ByType = append(stats.ByType, dto.AdjustmentTypeStatDTO{
			AdjustmentType: t.AdjustmentType,
			Count:          t.Count,
			TotalQuantity:  t.TotalQuantity,
		})
	}
	for _, d := range trend {
		stats.DailyTrend = append(stats.DailyTrend, dto.DailyTrendPointDTO{
			Date:  d.Day.Format("2006-01-02"),
			Count: d.Count,
		})
	}
	for _, p := range top {
		stats.TopProducts = append(stats.TopProducts, dto.TopProductStatDTO{
			ProductID:     p.ProductID,
			ProductName:   p.ProductName,
			SKU:           p.SKU,
			Count:         p.Count,
			TotalQuantity: p.TotalQuantity,
		})
	}
	return &dto.StatisticsResponse{Success: true, Statistics: stats}, nil
}

func (uc *InventoryUseCase) categoryNames() (map[string]string, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}
