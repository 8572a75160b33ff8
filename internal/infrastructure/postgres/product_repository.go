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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, description, brand, category_id, price, cost,
	images, sizes, colors, low_stock_threshold, reorder_level, reorder_quantity,
	active, created_at, updated_at`

// ProductRepo implements ProductRepository over PostgreSQL (pool or tx).
// Variants live in product_variants keyed by (product_id, size, color);
// every read hydrates them so stock status can be derived.
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the product persistence adapter. Pass a pool or tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new product and its variant grid.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description, product.Brand,
		product.CategoryID, product.Price, product.Cost,
		product.Images, product.Sizes, product.Colors,
		product.LowStockThreshold, product.ReorderLevel, product.ReorderQuantity,
		product.Active, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return r.replaceVariants(product.ID, product.Variants)
}

// Update rewrites the product row and replaces the variant grid with the
// one the caller computed (surviving quantities already carried over).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET sku = $2, name = $3, description = $4, brand = $5, category_id = NULLIF($6, ''),
			price = $7, cost = $8, images = $9, sizes = $10, colors = $11,
			low_stock_threshold = $12, reorder_level = $13, reorder_quantity = $14,
			active = $15, updated_at = $16
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description, product.Brand,
		product.CategoryID, product.Price, product.Cost,
		product.Images, product.Sizes, product.Colors,
		product.LowStockThreshold, product.ReorderLevel, product.ReorderQuantity,
		product.Active, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return r.replaceVariants(product.ID, product.Variants)
}

// Delete removes a product; variants cascade via FK.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID fetches one product with its variants. Returns nil when missing.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := r.scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	variants, err := r.variantsFor([]string{p.ID})
	if err != nil {
		return nil, err
	}
	p.Variants = variants[p.ID]
	return p, nil
}

// List returns a page of products ordered by SKU, variants included.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY sku LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return r.collect(rows)
}

// ListAll returns every product ordered by SKU, variants included.
func (r *ProductRepo) ListAll() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY sku`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return r.collect(rows)
}

func (r *ProductRepo) collect(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	var ids []string
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	variants, err := r.variantsFor(ids)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		p.Variants = variants[p.ID]
	}
	return list, nil
}

func (r *ProductRepo) scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var categoryID *string
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Brand, &categoryID,
		&p.Price, &p.Cost, &p.Images, &p.Sizes, &p.Colors,
		&p.LowStockThreshold, &p.ReorderLevel, &p.ReorderQuantity,
		&p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	return &p, nil
}

// variantsFor loads variants for the given product IDs in one query,
// grouped by product. Ordering follows the insert order of the grid.
func (r *ProductRepo) variantsFor(ids []string) (map[string][]entity.Variant, error) {
	result := make(map[string][]entity.Variant, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	query := `
		SELECT product_id, size, color, quantity
		FROM product_variants
		WHERE product_id = ANY($1)
		ORDER BY product_id, position`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var productID string
		var v entity.Variant
		if err := rows.Scan(&productID, &v.Size, &v.Color, &v.Quantity); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		result[productID] = append(result[productID], v)
	}
	return result, rows.Err()
}

// replaceVariants rewrites the whole grid for one product.
func (r *ProductRepo) replaceVariants(productID string, variants []entity.Variant) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM product_variants WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("clear variants: %w", err)
	}
	for i, v := range variants {
		_, err := r.q.Exec(ctx, `
			INSERT INTO product_variants (product_id, size, color, quantity, position)
			VALUES ($1, $2, $3, $4, $5)`,
			productID, v.Size, v.Color, v.Quantity, i,
		)
		if err != nil {
			return fmt.Errorf("insert variant: %w", err)
		}
	}
	return nil
}
