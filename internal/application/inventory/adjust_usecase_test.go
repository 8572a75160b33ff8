package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/velvetcart/admin-api/internal/application/inventory"
	"github.com/velvetcart/admin-api/internal/application/dto"
	"github.com/velvetcart/admin-api/internal/domain"
	"github.com/velvetcart/admin-api/internal/domain/entity"
)

func testProduct() *entity.Product {
	return &entity.Product{
		ID:                "p1",
		SKU:               "TS-001",
		Name:              "Classic Tee",
		Brand:             "Velvet",
		Price:             decimal.NewFromInt(25),
		LowStockThreshold: 10,
		ReorderQuantity:   20,
		Active:            true,
		Variants: []entity.Variant{
			{Size: "M", Color: "black", Quantity: 8},
			{Size: "L", Color: "black", Quantity: 2},
		},
	}
}

func newAdjustUC(s *memStore, cache *memCache) *appinv.AdjustmentUseCase {
	// Avoid wrapping a nil *memCache in a non-nil interface value.
	var c appinv.OverviewCache
	if cache != nil {
		c = cache
	}
	return appinv.NewAdjustmentUseCase(&memTxRunner{s}, &memProductRepo{s}, c)
}

func TestAdjust_AppliesDeltaAndWritesAudit(t *testing.T) {
	s := newMemStore(testProduct())
	uc := newAdjustUC(s, nil)

	err := uc.Adjust(context.Background(), "u1", dto.AdjustRequest{
		ProductID:      "p1",
		Size:           "M",
		Color:          "black",
		Adjustment:     -5,
		AdjustmentType: entity.AdjustmentTypeManual,
		Reason:         "cycle count",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, s.products["p1"].Variant("M", "black").Quantity)

	require.Len(t, s.adjustments, 1)
	rec := s.adjustments[0]
	assert.Equal(t, 8, rec.PreviousQuantity)
	assert.Equal(t, -5, rec.Adjustment)
	assert.Equal(t, 3, rec.NewQuantity)
	assert.Equal(t, rec.NewQuantity, rec.PreviousQuantity+rec.Adjustment)
	assert.Equal(t, "u1", rec.AdjustedBy)
	assert.Equal(t, "Classic Tee", rec.ProductName)
}

func TestAdjust_RejectsBelowZero_NoAuditWritten(t *testing.T) {
	s := newMemStore(testProduct())
	uc := newAdjustUC(s, nil)

	err := uc.Adjust(context.Background(), "u1", dto.AdjustRequest{
		ProductID:      "p1",
		Size:           "L",
		Color:          "black",
		Adjustment:     -3, // only 2 on hand
		AdjustmentType: entity.AdjustmentTypeDamage,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// the failed tx must leave no trace
	assert.Equal(t, 2, s.products["p1"].Variant("L", "black").Quantity)
	assert.Empty(t, s.adjustments)
}

func TestAdjust_ValidationGate(t *testing.T) {
	s := newMemStore(testProduct())
	uc := newAdjustUC(s, nil)

	cases := []dto.AdjustRequest{
		{Size: "M", Color: "black", Adjustment: 1, AdjustmentType: "manual"},             // no product
		{ProductID: "p1", Color: "black", Adjustment: 1, AdjustmentType: "manual"},       // no size
		{ProductID: "p1", Size: "M", Adjustment: 1, AdjustmentType: "manual"},            // no color
		{ProductID: "p1", Size: "M", Color: "black", AdjustmentType: "manual"},           // zero delta
		{ProductID: "p1", Size: "M", Color: "black", Adjustment: 1, AdjustmentType: "x"}, // bad type
	}
	for _, in := range cases {
		assert.ErrorIs(t, uc.Adjust(context.Background(), "u1", in), domain.ErrInvalidInput)
	}
	assert.Empty(t, s.adjustments)
}

func TestAdjust_UnknownProductOrVariant(t *testing.T) {
	s := newMemStore(testProduct())
	uc := newAdjustUC(s, nil)

	err := uc.Adjust(context.Background(), "u1", dto.AdjustRequest{
		ProductID: "missing", Size: "M", Color: "black", Adjustment: 1, AdjustmentType: "manual",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Adjust(context.Background(), "u1", dto.AdjustRequest{
		ProductID: "p1", Size: "XXL", Color: "pink", Adjustment: 1, AdjustmentType: "manual",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjust_InvalidatesOverviewCache(t *testing.T) {
	s := newMemStore(testProduct())
	cache := &memCache{stored: &dto.OverviewResponse{Success: true}}
	uc := newAdjustUC(s, cache)

	err := uc.Adjust(context.Background(), "u1", dto.AdjustRequest{
		ProductID: "p1", Size: "M", Color: "black", Adjustment: 2, AdjustmentType: "return",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated)
	assert.Nil(t, cache.stored)
}

func TestReorder_ExplicitVariant_UsesDefaultQuantity(t *testing.T) {
	s := newMemStore(testProduct())
	uc := newAdjustUC(s, nil)

	msg, err := uc.Reorder(context.Background(), "u1", dto.ReorderRequestDTO{
		ProductID: "p1",
		Size:      "L",
		Color:     "black",
	})
	require.NoError(t, err)
	assert.Contains(t, msg, "1 variant")

	// default reorderQuantity is 20
	assert.Equal(t, 22, s.products["p1"].Variant("L", "black").Quantity)

	require.Len(t, s.reorders, 1)
	assert.Equal(t, 20, s.reorders[0].Quantity)

	require.Len(t, s.adjustments, 1)
	assert.Equal(t, entity.AdjustmentTypeReorder, s.adjustments[0].AdjustmentType)
	assert.Equal(t, 2, s.adjustments[0].PreviousQuantity)
	assert.Equal(t, 22, s.adjustments[0].NewQuantity)
}

func TestReorder_EmptyVariant_TargetsAllLowVariants(t *testing.T) {
	// threshold 10 over 2 variants -> per-variant share 5; both 8 and 2... M=8 is above share, L=2 below
	s := newMemStore(testProduct())
	uc := newAdjustUC(s, nil)

	qty := 15
	_, err := uc.Reorder(context.Background(), "u1", dto.ReorderRequestDTO{
		ProductID: "p1",
		Quantity:  &qty,
	})
	require.NoError(t, err)

	// only the low variant (L/black, qty 2) is replenished
	assert.Equal(t, 8, s.products["p1"].Variant("M", "black").Quantity)
	assert.Equal(t, 17, s.products["p1"].Variant("L", "black").Quantity)
	require.Len(t, s.adjustments, 1)
	assert.Equal(t, "L", s.adjustments[0].Size)
}

func TestReorder_NoLowVariants_Conflicts(t *testing.T) {
	p := testProduct()
	p.Variants[0].Quantity = 50
	p.Variants[1].Quantity = 50
	s := newMemStore(p)
	uc := newAdjustUC(s, nil)

	_, err := uc.Reorder(context.Background(), "u1", dto.ReorderRequestDTO{ProductID: "p1"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, s.reorders)
}

func TestReorder_Validation(t *testing.T) {
	s := newMemStore(testProduct())
	uc := newAdjustUC(s, nil)

	// missing product
	_, err := uc.Reorder(context.Background(), "u1", dto.ReorderRequestDTO{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// half-specified variant
	_, err = uc.Reorder(context.Background(), "u1", dto.ReorderRequestDTO{ProductID: "p1", Size: "M"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// explicit non-positive quantity
	zero := 0
	_, err = uc.Reorder(context.Background(), "u1", dto.ReorderRequestDTO{ProductID: "p1", Size: "M", Color: "black", Quantity: &zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
