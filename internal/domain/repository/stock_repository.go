package repository

import "github.com/velvetcart/admin-api/internal/domain/entity"

// StockRepository is the port for per-variant stock reads/writes.
// Used inside transactions to keep the audit trail consistent.
type StockRepository interface {
	// GetVariantForUpdate loads the variant row and locks it (SELECT FOR UPDATE).
	// Returns nil when the variant does not exist.
	GetVariantForUpdate(productID, size, color string) (*entity.Variant, error)
	// SetQuantity writes the new quantity for an existing variant row.
	SetQuantity(productID, size, color string, quantity int) error
}
