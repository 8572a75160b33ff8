package entity

import "time"

// Roles for admin panel users.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is an admin panel account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
