package entity

import "time"

// Adjustment types. "sale" entries are produced by order fulfillment,
// "reorder" ones by replenishment; the rest come from the adjust endpoint.
const (
	AdjustmentTypeManual     = "manual"
	AdjustmentTypeReturn     = "return"
	AdjustmentTypeDamage     = "damage"
	AdjustmentTypeCorrection = "correction"
	AdjustmentTypeSale       = "sale"
	AdjustmentTypeReorder    = "reorder"
)

// ValidAdjustmentType reports whether t is a known adjustment type.
func ValidAdjustmentType(t string) bool {
	switch t {
	case AdjustmentTypeManual, AdjustmentTypeReturn, AdjustmentTypeDamage,
		AdjustmentTypeCorrection, AdjustmentTypeSale, AdjustmentTypeReorder:
		return true
	}
	return false
}

// StockAdjustment is one audit-trail entry for a variant quantity change.
// Append-only: NewQuantity = PreviousQuantity + Adjustment always holds.
type StockAdjustment struct {
	ID               string
	ProductID        string
	ProductName      string
	SKU              string
	Size             string
	Color            string
	AdjustmentType   string
	PreviousQuantity int
	Adjustment       int // signed delta
	NewQuantity      int
	Reason           string
	Notes            string
	AdjustedBy       string
	CreatedAt        time.Time
}

// ReorderRequest records a replenishment request. Size/Color empty means
// "all low-stock variants of the product".
type ReorderRequest struct {
	ID          string
	ProductID   string
	Size        string
	Color       string
	Quantity    int
	Notes       string
	RequestedBy string
	CreatedAt   time.Time
}
