package repository

import "github.com/velvetcart/admin-api/internal/domain/entity"

// UserRepository defines the persistence port for admin users.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// FindByEmail returns nil without error when no user matches.
	FindByEmail(email string) (*entity.User, error)
}
