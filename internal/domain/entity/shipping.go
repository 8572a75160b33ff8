package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShippingSettings is the single-row store shipping configuration.
// Orders at or above FreeShippingThreshold ship free.
type ShippingSettings struct {
	FlatRate              decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	Carrier               string
	UpdatedAt             time.Time
}
