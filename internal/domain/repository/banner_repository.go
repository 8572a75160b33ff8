package repository

import "github.com/velvetcart/admin-api/internal/domain/entity"

// BannerRepository defines the persistence port for storefront banners.
type BannerRepository interface {
	Create(banner *entity.Banner) error
	Update(banner *entity.Banner) error
	Delete(id string) error
	GetByID(id string) (*entity.Banner, error)
	// List returns banners ordered by position.
	List() ([]*entity.Banner, error)
}
