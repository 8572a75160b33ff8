package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/velvetcart/admin-api/internal/application/dto"
	"github.com/velvetcart/admin-api/internal/domain"
	"github.com/velvetcart/admin-api/internal/domain/entity"
	"github.com/velvetcart/admin-api/internal/domain/repository"
)

// ProductUseCase CRUD over catalog products.
// Creating or updating a product rebuilds the size×color variant grid,
// preserving quantities for variants that survive the edit.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create validates the payload via Normalize and persists a new product with
// an empty variant grid (stock arrives later through adjustments/reorders).
func (uc *ProductUseCase) Create(in dto.ProductRequest) (*dto.ProductResponse, error) {
	n, err := in.Normalize()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		SKU:               n.SKU,
		Name:              n.Name,
		Description:       n.Description,
		Brand:             n.Brand,
		CategoryID:        n.CategoryID,
		Price:             n.Price,
		Cost:              n.Cost,
		Images:            n.Images,
		Sizes:             n.Sizes,
		Colors:            n.Colors,
		Variants:          buildVariantGrid(n.Sizes, n.Colors, nil),
		LowStockThreshold: n.LowStockThreshold,
		ReorderLevel:      n.ReorderLevel,
		ReorderQuantity:   n.ReorderQuantity,
		Active:            n.Active,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// Update applies the payload to an existing product. The variant grid is
// rebuilt from the new size/color lists; quantities of surviving variants
// carry over, removed variants are dropped.
func (uc *ProductUseCase) Update(id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	n, err := in.Normalize()
	if err != nil {
		return nil, err
	}
	existing, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	existing.SKU = n.SKU
	existing.Name = n.Name
	existing.Description = n.Description
	existing.Brand = n.Brand
	existing.CategoryID = n.CategoryID
	existing.Price = n.Price
	existing.Cost = n.Cost
	existing.Images = n.Images
	existing.Sizes = n.Sizes
	existing.Colors = n.Colors
	existing.Variants = buildVariantGrid(n.Sizes, n.Colors, existing.Variants)
	existing.LowStockThreshold = n.LowStockThreshold
	existing.ReorderLevel = n.ReorderLevel
	existing.ReorderQuantity = n.ReorderQuantity
	existing.Active = n.Active
	existing.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(existing); err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(existing)
	return &resp, nil
}

// Delete removes a product. The audit trail keeps its own denormalized
// product name/SKU, so history survives the delete.
func (uc *ProductUseCase) Delete(id string) error {
	existing, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

// GetByID returns one product.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// List returns all products (the admin catalog table is unpaginated).
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToProductResponse(p))
	}
	return &dto.ProductListResponse{Success: true, Products: out, Total: len(out)}, nil
}

// buildVariantGrid produces one variant per (size, color) pair, carrying
// quantities over from prior where the pair already existed.
func buildVariantGrid(sizes, colors []string, prior []entity.Variant) []entity.Variant {
	priorQty := make(map[[2]string]int, len(prior))
	for _, v := range prior {
		priorQty[[2]string{v.Size, v.Color}] = v.Quantity
	}
	grid := make([]entity.Variant, 0, len(sizes)*len(colors))
	for _, size := range sizes {
		for _, color := range colors {
			grid = append(grid, entity.Variant{
				Size:     size,
				Color:    color,
				Quantity: priorQty[[2]string{size, color}],
			})
		}
	}
	return grid
}
