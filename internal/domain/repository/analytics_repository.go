package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentTypeCount is the raw grouped-by-type query result.
type AdjustmentTypeCount struct {
	AdjustmentType string
	Count          int
	TotalQuantity  int // sum of absolute deltas
}

// DailyAdjustmentCount is one point of the daily trend series.
type DailyAdjustmentCount struct {
	Day   time.Time
	Count int
}

// ProductAdjustmentCount ranks a product by adjustment activity.
type ProductAdjustmentCount struct {
	ProductID     string
	ProductName   string
	SKU           string
	Count         int
	TotalQuantity int
}

// AnalyticsRepository defines the read-only queries behind the statistics
// and dashboard tabs. Implementations never modify data.
type AnalyticsRepository interface {
	// CountAdjustmentsByType groups audit-trail entries by type in [start, end).
	CountAdjustmentsByType(ctx context.Context, start, end time.Time) ([]AdjustmentTypeCount, error)

	// DailyAdjustmentTrend returns one bucket per day in [start, end), oldest first.
	DailyAdjustmentTrend(ctx context.Context, start, end time.Time) ([]DailyAdjustmentCount, error)

	// TopAdjustedProducts returns the limit most-adjusted products in [start, end).
	TopAdjustedProducts(ctx context.Context, start, end time.Time, limit int) ([]ProductAdjustmentCount, error)

	// ── Dashboard counters ──

	// CountProducts returns total and active product counts.
	CountProducts(ctx context.Context) (total, active int, err error)

	// CountOrdersByStatus returns order counts keyed by status.
	CountOrdersByStatus(ctx context.Context) (map[string]int, error)

	// Revenue sums totals of non-cancelled orders in [start, end).
	// Uses COALESCE so an empty period yields zero, not NULL.
	Revenue(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
}
