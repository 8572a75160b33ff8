package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/velvetcart/admin-api/internal/domain"
	"github.com/velvetcart/admin-api/internal/domain/entity"
	"github.com/velvetcart/admin-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implements OrderRepository over PostgreSQL. Items live in
// order_items and are hydrated on every read.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the order adapter. Pass a pool or tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// GetByID fetches one order with its items. Returns nil when missing.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, number, customer_name, customer_email, subtotal, shipping_cost, total, status, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Number, &o.CustomerName, &o.CustomerEmail,
		&o.Subtotal, &o.ShippingCost, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.itemsFor([]string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

// List returns orders newest first, optionally filtered by status ("" = all).
func (r *OrderRepo) List(status string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, number, customer_name, customer_email, subtotal, shipping_cost, total, status, created_at, updated_at
		FROM orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	var ids []string
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.Number, &o.CustomerName, &o.CustomerEmail,
			&o.Subtotal, &o.ShippingCost, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	items, err := r.itemsFor(ids)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		o.Items = items[o.ID]
	}
	return list, nil
}

// Count returns how many orders match the status filter ("" = all).
func (r *OrderRepo) Count(status string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM orders WHERE ($1 = '' OR status = $1)`, status,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// UpdateStatus moves an order to the given status.
func (r *OrderRepo) UpdateStatus(id, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) itemsFor(ids []string) (map[string][]entity.OrderItem, error) {
	result := make(map[string][]entity.OrderItem, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	query := `
		SELECT order_id, product_id, product_name, sku, size, color, quantity, unit_price, subtotal
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, position`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var orderID string
		var it entity.OrderItem
		if err := rows.Scan(
			&orderID, &it.ProductID, &it.ProductName, &it.SKU,
			&it.Size, &it.Color, &it.Quantity, &it.UnitPrice, &it.Subtotal,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		result[orderID] = append(result[orderID], it)
	}
	return result, rows.Err()
}
