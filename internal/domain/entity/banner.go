package entity

import "time"

// Banner is a promotional banner shown on the storefront.
// Position controls ordering in the carousel; lower renders first.
type Banner struct {
	ID        string
	Title     string
	ImageURL  string
	LinkURL   string
	Position  int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
