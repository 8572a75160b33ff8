package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/velvetcart/admin-api/internal/domain/entity"
)

// ShippingSettingsRequest body for PUT /api/shipping/settings.
type ShippingSettingsRequest struct {
	FlatRate              decimal.Decimal `json:"flatRate"`
	FreeShippingThreshold decimal.Decimal `json:"freeShippingThreshold"`
	Carrier               string          `json:"carrier"`
}

// ShippingSettingsResponse envelope for GET /api/shipping/settings.
type ShippingSettingsResponse struct {
	Success               bool            `json:"success"`
	FlatRate              decimal.Decimal `json:"flatRate"`
	FreeShippingThreshold decimal.Decimal `json:"freeShippingThreshold"`
	Carrier               string          `json:"carrier"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

// ToShippingSettingsResponse maps the entity to its API representation.
func ToShippingSettingsResponse(s *entity.ShippingSettings) ShippingSettingsResponse {
	return ShippingSettingsResponse{
		Success:               true,
		FlatRate:              s.FlatRate,
		FreeShippingThreshold: s.FreeShippingThreshold,
		Carrier:               s.Carrier,
		UpdatedAt:             s.UpdatedAt,
	}
}
