package dto

import (
	"time"

	"github.com/velvetcart/admin-api/internal/domain/entity"
)

// CategoryRequest body for POST/PUT /api/categories.
type CategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Active      *bool  `json:"active,omitempty"`
}

// CategoryResponse representation of a category.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToCategoryResponse maps an entity to its API representation.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CategoryListResponse envelope for GET /api/categories.
type CategoryListResponse struct {
	Success    bool               `json:"success"`
	Categories []CategoryResponse `json:"categories"`
}
