package repository

import "github.com/velvetcart/admin-api/internal/domain/entity"

// CategoryRepository defines the persistence port for categories.
type CategoryRepository interface {
	Create(category *entity.Category) error
	Update(category *entity.Category) error
	Delete(id string) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
}
