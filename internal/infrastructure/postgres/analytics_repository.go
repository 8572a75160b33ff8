package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/velvetcart/admin-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo implements the read-only aggregate queries behind the
// statistics and dashboard endpoints.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository builds the analytics adapter. Pass a pool or tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountAdjustmentsByType groups audit-trail entries by type in [start, end).
func (r *AnalyticsRepo) CountAdjustmentsByType(ctx context.Context, start, end time.Time) ([]repository.AdjustmentTypeCount, error) {
	query := `
		SELECT adjustment_type, COUNT(*), COALESCE(SUM(ABS(adjustment)), 0)
		FROM stock_adjustments
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY adjustment_type
		ORDER BY COUNT(*) DESC`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("count adjustments by type: %w", err)
	}
	defer rows.Close()
	var list []repository.AdjustmentTypeCount
	for rows.Next() {
		var c repository.AdjustmentTypeCount
		if err := rows.Scan(&c.AdjustmentType, &c.Count, &c.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan adjustment type count: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// DailyAdjustmentTrend returns one bucket per day in [start, end), oldest
// first. Days without activity are absent; the use case fills gaps.
func (r *AnalyticsRepo) DailyAdjustmentTrend(ctx context.Context, start, end time.Time) ([]repository.DailyAdjustmentCount, error) {
	query := `
		SELECT date_trunc('day', created_at) AS day, COUNT(*)
		FROM stock_adjustments
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY day
		ORDER BY day`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("daily adjustment trend: %w", err)
	}
	defer rows.Close()
	var list []repository.DailyAdjustmentCount
	for rows.Next() {
		var c repository.DailyAdjustmentCount
		if err := rows.Scan(&c.Day, &c.Count); err != nil {
			return nil, fmt.Errorf("scan daily count: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// TopAdjustedProducts returns the limit most-adjusted products in [start, end).
func (r *AnalyticsRepo) TopAdjustedProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.ProductAdjustmentCount, error) {
	query := `
		SELECT product_id, product_name, sku, COUNT(*), COALESCE(SUM(ABS(adjustment)), 0)
		FROM stock_adjustments
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY product_id, product_name, sku
		ORDER BY COUNT(*) DESC, product_name
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("top adjusted products: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductAdjustmentCount
	for rows.Next() {
		var c repository.ProductAdjustmentCount
		if err := rows.Scan(&c.ProductID, &c.ProductName, &c.SKU, &c.Count, &c.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan product count: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CountProducts returns total and active product counts.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (total, active int, err error) {
	err = r.q.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE active) FROM products`,
	).Scan(&total, &active)
	if err != nil {
		return 0, 0, fmt.Errorf("count products: %w", err)
	}
	return total, active, nil
}

// CountOrdersByStatus returns order counts keyed by status.
func (r *AnalyticsRepo) CountOrdersByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.q.Query(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	defer rows.Close()
	result := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan order count: %w", err)
		}
		result[status] = n
	}
	return result, rows.Err()
}

// Revenue sums totals of non-cancelled orders in [start, end).
func (r *AnalyticsRepo) Revenue(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE status <> 'cancelled' AND created_at >= $1 AND created_at < $2`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("revenue: %w", err)
	}
	return total, nil
}
