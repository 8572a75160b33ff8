package usecase

import (
	"time"

	"github.com/velvetcart/admin-api/internal/application/dto"
	"github.com/velvetcart/admin-api/internal/domain"
	"github.com/velvetcart/admin-api/internal/domain/entity"
	"github.com/velvetcart/admin-api/internal/domain/repository"
)

// ShippingUseCase reads/updates the single-row shipping configuration.
type ShippingUseCase struct {
	shippingRepo repository.ShippingRepository
}

// NewShippingUseCase builds the use case.
func NewShippingUseCase(shippingRepo repository.ShippingRepository) *ShippingUseCase {
	return &ShippingUseCase{shippingRepo: shippingRepo}
}

// Get returns the current settings.
func (uc *ShippingUseCase) Get() (*dto.ShippingSettingsResponse, error) {
	settings, err := uc.shippingRepo.Get()
	if err != nil {
		return nil, err
	}
	resp := dto.ToShippingSettingsResponse(settings)
	return &resp, nil
}

// Update overwrites the settings. Rates must not be negative.
func (uc *ShippingUseCase) Update(in dto.ShippingSettingsRequest) (*dto.ShippingSettingsResponse, error) {
	if in.FlatRate.IsNegative() || in.FreeShippingThreshold.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	settings := &entity.ShippingSettings{
		FlatRate:              in.FlatRate,
		FreeShippingThreshold: in.FreeShippingThreshold,
		Carrier:               in.Carrier,
		UpdatedAt:             time.Now(),
	}
	if err := uc.shippingRepo.Update(settings); err != nil {
		return nil, err
	}
	resp := dto.ToShippingSettingsResponse(settings)
	return &resp, nil
}
