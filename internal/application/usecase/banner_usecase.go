package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/velvetcart/admin-api/internal/application/dto"
	"github.com/velvetcart/admin-api/internal/domain"
	"github.com/velvetcart/admin-api/internal/domain/entity"
	"github.com/velvetcart/admin-api/internal/domain/repository"
)

// BannerUseCase CRUD over storefront banners.
type BannerUseCase struct {
	bannerRepo repository.BannerRepository
}

// NewBannerUseCase builds the use case.
func NewBannerUseCase(bannerRepo repository.BannerRepository) *BannerUseCase {
	return &BannerUseCase{bannerRepo: bannerRepo}
}

// Create persists a new banner. Title and image are required.
func (uc *BannerUseCase) Create(in dto.BannerRequest) (*dto.BannerResponse, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.ImageURL) == "" {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	banner := &entity.Banner{
		ID:        uuid.New().String(),
		Title:     in.Title,
		ImageURL:  in.ImageURL,
		LinkURL:   in.LinkURL,
		Position:  in.Position,
		Active:    active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.bannerRepo.Create(banner); err != nil {
		return nil, err
	}
	resp := dto.ToBannerResponse(banner)
	return &resp, nil
}

// Update applies the payload to an existing banner.
func (uc *BannerUseCase) Update(id string, in dto.BannerRequest) (*dto.BannerResponse, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.ImageURL) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.bannerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	existing.Title = in.Title
	existing.ImageURL = in.ImageURL
	existing.LinkURL = in.LinkURL
	existing.Position = in.Position
	if in.Active != nil {
		existing.Active = *in.Active
	}
	existing.UpdatedAt = time.Now()
	if err := uc.bannerRepo.Update(existing); err != nil {
		return nil, err
	}
	resp := dto.ToBannerResponse(existing)
	return &resp, nil
}

// Delete removes a banner.
func (uc *BannerUseCase) Delete(id string) error {
	existing, err := uc.bannerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.bannerRepo.Delete(id)
}

// List returns all banners ordered by position.
func (uc *BannerUseCase) List() (*dto.BannerListResponse, error) {
	banners, err := uc.bannerRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BannerResponse, 0, len(banners))
	for _, b := range banners {
		out = append(out, dto.ToBannerResponse(b))
	}
	return &dto.BannerListResponse{Success: true, Banners: out}, nil
}
