package repository

import "github.com/velvetcart/admin-api/internal/domain/entity"

// ShippingRepository persists the single-row shipping configuration.
type ShippingRepository interface {
	Get() (*entity.ShippingSettings, error)
	Update(settings *entity.ShippingSettings) error
}
