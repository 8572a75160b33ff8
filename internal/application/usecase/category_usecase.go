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

// CategoryUseCase CRUD over storefront categories.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUseCase builds the use case.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// Create persists a new category. The slug is derived from the name when absent.
func (uc *CategoryUseCase) Create(in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	slug := in.Slug
	if slug == "" {
		slug = slugify(in.Name)
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	resp := dto.ToCategoryResponse(category)
	return &resp, nil
}

// Update applies the payload to an existing category.
func (uc *CategoryUseCase) Update(id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	existing.Name = in.Name
	if in.Slug != "" {
		existing.Slug = in.Slug
	}
	existing.Description = in.Description
	if in.Active != nil {
		existing.Active = *in.Active
	}
	existing.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(existing); err != nil {
		return nil, err
	}
	resp := dto.ToCategoryResponse(existing)
	return &resp, nil
}

// Delete removes a category.
func (uc *CategoryUseCase) Delete(id string) error {
	existing, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.categoryRepo.Delete(id)
}

// GetByID returns one category.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToCategoryResponse(category)
	return &resp, nil
}

// List returns all categories.
func (uc *CategoryUseCase) List() (*dto.CategoryListResponse, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.ToCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Success: true, Categories: out}, nil
}

// slugify lowercases and dash-joins the name: "Summer Sale" -> "summer-sale".
func slugify(name string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	return strings.Join(fields, "-")
}
