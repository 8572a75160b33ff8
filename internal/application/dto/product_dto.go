package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/velvetcart/admin-api/internal/domain"
	"github.com/velvetcart/admin-api/internal/domain/entity"
)

// ProductRequest body for POST/PUT /api/products. Sizes, Colors and Images
// arrive as comma-separated form values and are parsed to typed lists by
// Normalize, never split inline at submit time.
type ProductRequest struct {
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Brand             string          `json:"brand"`
	CategoryID        string          `json:"categoryId"`
	Price             decimal.Decimal `json:"price"`
	Cost              decimal.Decimal `json:"cost"`
	Images            string          `json:"images"` // comma-separated URLs
	Sizes             string          `json:"sizes"`  // comma-separated, e.g. "S,M,L"
	Colors            string          `json:"colors"` // comma-separated
	LowStockThreshold int             `json:"lowStockThreshold"`
	ReorderLevel      int             `json:"reorderLevel"`
	ReorderQuantity   int             `json:"reorderQuantity"`
	Active            *bool           `json:"active,omitempty"`
}

// NormalizedProduct is the typed result of parsing a ProductRequest.
type NormalizedProduct struct {
	SKU               string
	Name              string
	Description       string
	Brand             string
	CategoryID        string
	Price             decimal.Decimal
	Cost              decimal.Decimal
	Images            []string
	Sizes             []string
	Colors            []string
	LowStockThreshold int
	ReorderLevel      int
	ReorderQuantity   int
	Active            bool
}

// Normalize validates the request and parses list fields.
// A product needs a SKU, a name, a non-negative price and at least one size
// and color (variants are the size×color grid).
func (r ProductRequest) Normalize() (*NormalizedProduct, error) {
	sizes := ParseList(r.Sizes)
	colors := ParseList(r.Colors)
	if r.SKU == "" || r.Name == "" || len(sizes) == 0 || len(colors) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if r.Price.IsNegative() || r.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if r.LowStockThreshold < 0 || r.ReorderLevel < 0 || r.ReorderQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &NormalizedProduct{
		SKU:               r.SKU,
		Name:              r.Name,
		Description:       r.Description,
		Brand:             r.Brand,
		CategoryID:        r.CategoryID,
		Price:             r.Price,
		Cost:              r.Cost,
		Images:            ParseList(r.Images),
		Sizes:             sizes,
		Colors:            colors,
		LowStockThreshold: r.LowStockThreshold,
		ReorderLevel:      r.ReorderLevel,
		ReorderQuantity:   r.ReorderQuantity,
		Active:            active,
	}, nil
}

// ProductResponse representation of a product for the admin panel.
type ProductResponse struct {
	ID                string          `json:"id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Brand             string          `json:"brand"`
	CategoryID        string          `json:"categoryId"`
	Price             decimal.Decimal `json:"price"`
	Cost              decimal.Decimal `json:"cost"`
	Images            []string        `json:"images"`
	Sizes             []string        `json:"sizes"`
	Colors            []string        `json:"colors"`
	Variants          []VariantDTO    `json:"variants"`
	TotalStock        int             `json:"totalStock"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	ReorderQuantity   int             `json:"reorderQuantity"`
	Active            bool            `json:"active"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// ToProductResponse maps an entity to its API representation.
func ToProductResponse(p *entity.Product) ProductResponse {
	variants := make([]VariantDTO, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, VariantDTO{Size: v.Size, Color: v.Color, Quantity: v.Quantity})
	}
	return ProductResponse{
		ID:                p.ID,
		SKU:               p.SKU,
		Name:              p.Name,
		Description:       p.Description,
		Brand:             p.Brand,
		CategoryID:        p.CategoryID,
		Price:             p.Price,
		Cost:              p.Cost,
		Images:            p.Images,
		Sizes:             p.Sizes,
		Colors:            p.Colors,
		Variants:          variants,
		TotalStock:        p.TotalStock(),
		LowStockThreshold: p.LowStockThreshold,
		ReorderQuantity:   p.ReorderQuantity,
		Active:            p.Active,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ProductListResponse envelope for GET /api/products.
type ProductListResponse struct {
	Success  bool              `json:"success"`
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}
