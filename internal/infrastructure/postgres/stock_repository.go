package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/velvetcart/admin-api/internal/domain/entity"
	"github.com/velvetcart/admin-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implements StockRepository over PostgreSQL (pool or tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository builds the stock adapter. Pass a pool or tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetVariantForUpdate reads the variant row and locks it (SELECT FOR UPDATE).
// Returns nil when the variant does not exist.
func (r *StockRepo) GetVariantForUpdate(productID, size, color string) (*entity.Variant, error) {
	query := `
		SELECT size, color, quantity
		FROM product_variants
		WHERE product_id = $1 AND size = $2 AND color = $3
		FOR UPDATE`
	var v entity.Variant
	err := r.q.QueryRow(context.Background(), query, productID, size, color).Scan(
		&v.Size, &v.Color, &v.Quantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant for update: %w", err)
	}
	return &v, nil
}

// SetQuantity writes the new quantity for an existing variant row.
func (r *StockRepo) SetQuantity(productID, size, color string, quantity int) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE product_variants SET quantity = $4
		WHERE product_id = $1 AND size = $2 AND color = $3`,
		productID, size, color, quantity,
	)
	if err != nil {
		return fmt.Errorf("set variant quantity: %w", err)
	}
	return nil
}
