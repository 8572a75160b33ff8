package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variant is a (size, color) stock-keeping unit within a product.
type Variant struct {
	Size     string
	Color    string
	Quantity int
}

// Product represents a catalog product with per-variant stock.
// LowStockThreshold and ReorderLevel drive alerting; ReorderQuantity is the
// default replenishment amount when a reorder omits an explicit quantity.
type Product struct {
	ID                string
	SKU               string // unique per store
	Name              string
	Description       string
	Brand             string
	CategoryID        string
	Price             decimal.Decimal
	Cost              decimal.Decimal
	Images            []string
	Sizes             []string
	Colors            []string
	Variants          []Variant
	LowStockThreshold int
	ReorderLevel      int // defaults to half the threshold when zero
	ReorderQuantity   int
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TotalStock is the sum of all variant quantities.
func (p *Product) TotalStock() int {
	total := 0
	for _, v := range p.Variants {
		total += v.Quantity
	}
	return total
}

// Variant returns the variant matching (size, color), or nil.
func (p *Product) Variant(size, color string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].Size == size && p.Variants[i].Color == color {
			return &p.Variants[i]
		}
	}
	return nil
}

// StockValue is TotalStock valued at the sale price.
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.TotalStock())))
}
