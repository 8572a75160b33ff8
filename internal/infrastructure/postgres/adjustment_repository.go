package postgres

import (
	"context"
	"fmt"

	"github.com/velvetcart/admin-api/internal/domain/entity"
	"github.com/velvetcart/admin-api/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)
var _ repository.ReorderRequestRepository = (*ReorderRequestRepo)(nil)

// AdjustmentRepo implements the append-only audit trail over PostgreSQL.
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository builds the adjustment adapter. Pass a pool or tx (Querier).
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

// Create appends one audit-trail entry.
func (r *AdjustmentRepo) Create(a *entity.StockAdjustment) error {
	query := `
		INSERT INTO stock_adjustments
			(id, product_id, product_name, sku, size, color, adjustment_type,
			 previous_quantity, adjustment, new_quantity, reason, notes, adjusted_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.ProductID, a.ProductName, a.SKU, a.Size, a.Color, a.AdjustmentType,
		a.PreviousQuantity, a.Adjustment, a.NewQuantity, a.Reason, a.Notes, a.AdjustedBy, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert adjustment: %w", err)
	}
	return nil
}

// List returns records newest first.
func (r *AdjustmentRepo) List(limit, offset int) ([]*entity.StockAdjustment, error) {
	query := `
		SELECT id, product_id, product_name, sku, size, color, adjustment_type,
			previous_quantity, adjustment, new_quantity, reason, notes, adjusted_by, created_at
		FROM stock_adjustments
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockAdjustment
	for rows.Next() {
		var a entity.StockAdjustment
		if err := rows.Scan(
			&a.ID, &a.ProductID, &a.ProductName, &a.SKU, &a.Size, &a.Color, &a.AdjustmentType,
			&a.PreviousQuantity, &a.Adjustment, &a.NewQuantity, &a.Reason, &a.Notes, &a.AdjustedBy, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Count returns the total number of audit-trail entries.
func (r *AdjustmentRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM stock_adjustments`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count adjustments: %w", err)
	}
	return n, nil
}

// ReorderRequestRepo persists replenishment requests.
type ReorderRequestRepo struct {
	q Querier
}

// NewReorderRequestRepository builds the reorder adapter. Pass a pool or tx (Querier).
func NewReorderRequestRepository(q Querier) *ReorderRequestRepo {
	return &ReorderRequestRepo{q: q}
}

// Create persists one reorder request.
func (r *ReorderRequestRepo) Create(req *entity.ReorderRequest) error {
	query := `
		INSERT INTO reorder_requests (id, product_id, size, color, quantity, notes, requested_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.ProductID, req.Size, req.Color, req.Quantity, req.Notes, req.RequestedBy, req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reorder request: %w", err)
	}
	return nil
}
