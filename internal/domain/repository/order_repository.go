package repository

import "github.com/velvetcart/admin-api/internal/domain/entity"

// OrderRepository defines the persistence port for customer orders.
// Orders are created by the storefront; the admin panel only reads them
// and moves their status.
type OrderRepository interface {
	GetByID(id string) (*entity.Order, error)
	// List returns orders newest first, optionally filtered by status ("" = all).
	List(status string, limit, offset int) ([]*entity.Order, error)
	Count(status string) (int, error)
	UpdateStatus(id, status string) error
}
