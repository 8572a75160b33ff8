package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/velvetcart/admin-api/internal/application/dto"
	"github.com/velvetcart/admin-api/internal/domain"
	"github.com/velvetcart/admin-api/internal/domain/entity"
	domaininv "github.com/velvetcart/admin-api/internal/domain/inventory"
	"github.com/velvetcart/admin-api/internal/domain/repository"
)

// AdjustmentUseCase applies stock adjustments and reorders transactionally,
// with row locking (SELECT FOR UPDATE) on the variant and an append-only
// audit record per change.
type AdjustmentUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	cache       OverviewCache
}

// NewAdjustmentUseCase builds the use case. cache may be nil.
func NewAdjustmentUseCase(txRunner TxRunner, productRepo repository.ProductRepository, cache OverviewCache) *AdjustmentUseCase {
	return &AdjustmentUseCase{txRunner: txRunner, productRepo: productRepo, cache: cache}
}

// Adjust validates the request, then in one transaction: locks the variant
// row, computes newQuantity = previousQuantity + adjustment, rejects drops
// below zero, persists the variant and appends the audit record.
func (uc *AdjustmentUseCase) Adjust(ctx context.Context, userID string, in dto.AdjustRequest) error {
	if in.ProductID == "" || in.Size == "" || in.Color == "" || in.Adjustment == 0 {
		return domain.ErrInvalidInput
	}
	if !entity.ValidAdjustmentType(in.AdjustmentType) {
		return domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		adjustmentRepo repository.AdjustmentRepository,
		_ repository.ReorderRequestRepository,
	) error {
		// Lock the variant row so concurrent adjustments serialize
		variant, err := stockRepo.GetVariantForUpdate(in.ProductID, in.Size, in.Color)
		if err != nil {
			return err
		}
		if variant == nil {
			return domain.ErrNotFound
		}
		previous := variant.Quantity
		next := previous + in.Adjustment
		if next < 0 {
			return domain.ErrInsufficientStock
		}
		if err := stockRepo.SetQuantity(in.ProductID, in.Size, in.Color, next); err != nil {
			return err
		}
		return adjustmentRepo.Create(&entity.StockAdjustment{
			ID:               uuid.New().String(),
			ProductID:        product.ID,
			ProductName:      product.Name,
			SKU:              product.SKU,
			Size:             in.Size,
			Color:            in.Color,
			AdjustmentType:   in.AdjustmentType,
			PreviousQuantity: previous,
			Adjustment:       in.Adjustment,
			NewQuantity:      next,
			Reason:           in.Reason,
			Notes:            in.Notes,
			AdjustedBy:       userID,
			CreatedAt:        now,
		})
	})
	if err != nil {
		return err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
	return nil
}

// Reorder replenishes one variant, or every low-stock variant when the
// request leaves size/color empty. Quantity defaults to the product's
// reorderQuantity and is applied per variant. Everything (reorder record
// plus one reorder-type adjustment per variant) commits in one transaction.
func (uc *AdjustmentUseCase) Reorder(ctx context.Context, userID string, in dto.ReorderRequestDTO) (string, error) {
	if in.ProductID == "" {
		return "", domain.ErrInvalidInput
	}
	// A half-specified variant is ambiguous
	if (in.Size == "") != (in.Color == "") {
		return "", domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", domain.ErrNotFound
	}

	quantity := product.ReorderQuantity
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if quantity <= 0 {
		return "", domain.ErrInvalidInput
	}

	var targets []entity.Variant
	if in.Size != "" {
		v := product.Variant(in.Size, in.Color)
		if v == nil {
			return "", domain.ErrNotFound
		}
		targets = []entity.Variant{*v}
	} else {
		targets = domaininv.LowVariants(product)
		if len(targets) == 0 {
			// Nothing under threshold: reordering all variants would overstock
			return "", domain.ErrConflict
		}
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		adjustmentRepo repository.AdjustmentRepository,
		reorderRepo repository.ReorderRequestRepository,
	) error {
		if err := reorderRepo.Create(&entity.ReorderRequest{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			Size:        in.Size,
			Color:       in.Color,
			Quantity:    quantity,
			Notes:       in.Notes,
			RequestedBy: userID,
			CreatedAt:   now,
		}); err != nil {
			return err
		}
		for _, target := range targets {
			variant, err := stockRepo.GetVariantForUpdate(product.ID, target.Size, target.Color)
			if err != nil {
				return err
			}
			if variant == nil {
				return domain.ErrNotFound
			}
			previous := variant.Quantity
			next := previous + quantity
			if err := stockRepo.SetQuantity(product.ID, target.Size, target.Color, next); err != nil {
				return err
			}
			if err := adjustmentRepo.Create(&entity.StockAdjustment{
				ID:               uuid.New().String(),
				ProductID:        product.ID,
				ProductName:      product.Name,
				SKU:              product.SKU,
				Size:             target.Size,
				Color:            target.Color,
				AdjustmentType:   entity.AdjustmentTypeReorder,
				PreviousQuantity: previous,
				Adjustment:       quantity,
				NewQuantity:      next,
				Reason:           "reorder",
				Notes:            in.Notes,
				AdjustedBy:       userID,
				CreatedAt:        now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
	return fmt.Sprintf("reorder applied to %d variant(s)", len(targets)), nil
}
