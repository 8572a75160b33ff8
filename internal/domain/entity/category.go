package entity

import "time"

// Category groups products in the storefront navigation.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
