package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Transitions are handled by the status-update endpoint;
// cancelled and delivered are terminal.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a purchased line: product, variant and quantity at sale price.
type OrderItem struct {
	ProductID   string
	ProductName string
	SKU         string
	Size        string
	Color       string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// Order represents a customer order as seen by the admin panel.
type Order struct {
	ID            string
	Number        string // human-readable order number
	CustomerName  string
	CustomerEmail string
	Items         []OrderItem
	Subtotal      decimal.Decimal
	ShippingCost  decimal.Decimal
	Total         decimal.Decimal
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
