package dto

import (
	"time"

	"github.com/velvetcart/admin-api/internal/domain/entity"
)

// BannerRequest body for POST/PUT /api/banners.
type BannerRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl"`
	Position int    `json:"position"`
	Active   *bool  `json:"active,omitempty"`
}

// BannerResponse representation of a banner.
type BannerResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	LinkURL   string    `json:"linkUrl"`
	Position  int       `json:"position"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToBannerResponse maps an entity to its API representation.
func ToBannerResponse(b *entity.Banner) BannerResponse {
	return BannerResponse{
		ID:        b.ID,
		Title:     b.Title,
		ImageURL:  b.ImageURL,
		LinkURL:   b.LinkURL,
		Position:  b.Position,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// BannerListResponse envelope for GET /api/banners.
type BannerListResponse struct {
	Success bool             `json:"success"`
	Banners []BannerResponse `json:"banners"`
}
