// Package inventory holds the pure stock classification rules (domain service).
package inventory

import "github.com/velvetcart/admin-api/internal/domain/entity"

// Item statuses derived from stock levels.
const (
	StatusInStock    = "in_stock"
	StatusLowStock   = "low_stock"
	StatusOutOfStock = "out_of_stock"
	StatusReorder    = "reorder"
)

// Alert severities.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// ReorderLevel returns the product's effective reorder point.
// Falls back to half the low-stock threshold when not configured.
func ReorderLevel(p *entity.Product) int {
	if p.ReorderLevel > 0 {
		return p.ReorderLevel
	}
	return p.LowStockThreshold / 2
}

// Status classifies a product by total stock:
// out_of_stock (0) < reorder (<= reorder level) < low_stock (<= threshold) < in_stock.
func Status(p *entity.Product) string {
	total := p.TotalStock()
	if total <= 0 {
		return StatusOutOfStock
	}
	if total <= ReorderLevel(p) {
		return StatusReorder
	}
	if total <= p.LowStockThreshold {
		return StatusLowStock
	}
	return StatusInStock
}

// LowVariants returns the variants whose quantity is at or below the
// per-variant share of the threshold (threshold / variant count, min 1).
func LowVariants(p *entity.Product) []entity.Variant {
	if len(p.Variants) == 0 || p.LowStockThreshold <= 0 {
		return nil
	}
	share := p.LowStockThreshold / len(p.Variants)
	if share < 1 {
		share = 1
	}
	var low []entity.Variant
	for _, v := range p.Variants {
		if v.Quantity <= share {
			low = append(low, v)
		}
	}
	return low
}

// Severity classifies an alert:
// critical when stock is gone or at half the threshold or less,
// warning when the total is under the threshold,
// info when only individual variants are low while the total is fine.
// Returns ok=false when the product needs no alert at all.
func Severity(p *entity.Product) (severity string, ok bool) {
	if p.LowStockThreshold <= 0 {
		return "", false
	}
	total := p.TotalStock()
	switch {
	case total <= 0 || total <= p.LowStockThreshold/2:
		return SeverityCritical, true
	case total <= p.LowStockThreshold:
		return SeverityWarning, true
	case len(LowVariants(p)) > 0:
		return SeverityInfo, true
	}
	return "", false
}
