package repository

import "github.com/velvetcart/admin-api/internal/domain/entity"

// ProductRepository defines the persistence port for catalog products.
// List always hydrates variants; the overview derives status from them.
type ProductRepository interface {
	Create(product *entity.Product) error
	Update(product *entity.Product) error
	Delete(id string) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	ListAll() ([]*entity.Product, error)
}
