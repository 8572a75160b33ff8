package repository

import "github.com/velvetcart/admin-api/internal/domain/entity"

// AdjustmentRepository is the append-only port for the stock audit trail.
type AdjustmentRepository interface {
	Create(adjustment *entity.StockAdjustment) error
	// List returns records newest first (created_at DESC, id DESC).
	List(limit, offset int) ([]*entity.StockAdjustment, error)
	Count() (int, error)
}

// ReorderRequestRepository persists replenishment requests.
type ReorderRequestRepository interface {
	Create(request *entity.ReorderRequest) error
}
