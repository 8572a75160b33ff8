package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velvetcart/admin-api/internal/domain/entity"
	"github.com/velvetcart/admin-api/internal/domain/inventory"
)

func product(threshold, reorderLevel int, quantities ...int) *entity.Product {
	p := &entity.Product{
		LowStockThreshold: threshold,
		ReorderLevel:      reorderLevel,
	}
	sizes := []string{"S", "M", "L", "XL", "XXL"}
	for i, q := range quantities {
		p.Variants = append(p.Variants, entity.Variant{Size: sizes[i%len(sizes)], Color: "black", Quantity: q})
	}
	return p
}

func TestStatus_Boundaries(t *testing.T) {
	// threshold 10, reorder level 4
	assert.Equal(t, inventory.StatusOutOfStock, inventory.Status(product(10, 4, 0, 0)))
	assert.Equal(t, inventory.StatusReorder, inventory.Status(product(10, 4, 2, 2)))
	assert.Equal(t, inventory.StatusReorder, inventory.Status(product(10, 4, 4)))
	assert.Equal(t, inventory.StatusLowStock, inventory.Status(product(10, 4, 5)))
	assert.Equal(t, inventory.StatusLowStock, inventory.Status(product(10, 4, 10)))
	assert.Equal(t, inventory.StatusInStock, inventory.Status(product(10, 4, 11)))
}

func TestReorderLevel_DefaultsToHalfThreshold(t *testing.T) {
	assert.Equal(t, 5, inventory.ReorderLevel(product(10, 0)))
	assert.Equal(t, 3, inventory.ReorderLevel(product(10, 3)))
}

func TestSeverity(t *testing.T) {
	// out of stock -> critical
	sev, ok := inventory.Severity(product(10, 0, 0, 0))
	assert.True(t, ok)
	assert.Equal(t, inventory.SeverityCritical, sev)

	// at half the threshold -> critical
	sev, ok = inventory.Severity(product(10, 0, 5))
	assert.True(t, ok)
	assert.Equal(t, inventory.SeverityCritical, sev)

	// under the threshold but above half -> warning
	sev, ok = inventory.Severity(product(10, 0, 8))
	assert.True(t, ok)
	assert.Equal(t, inventory.SeverityWarning, sev)

	// total healthy but one variant empty -> info
	sev, ok = inventory.Severity(product(10, 0, 20, 0))
	assert.True(t, ok)
	assert.Equal(t, inventory.SeverityInfo, sev)

	// healthy everywhere -> no alert
	_, ok = inventory.Severity(product(10, 0, 20, 20))
	assert.False(t, ok)

	// no threshold configured -> never alerts
	_, ok = inventory.Severity(product(0, 0, 0))
	assert.False(t, ok)
}

func TestLowVariants_PerVariantShare(t *testing.T) {
	// threshold 10 across 2 variants -> share 5 each
	p := product(10, 0, 5, 6)
	low := inventory.LowVariants(p)
	assert.Len(t, low, 1)
	assert.Equal(t, 5, low[0].Quantity)

	// share never drops below 1
	p = product(2, 0, 0, 1, 1, 2)
	low = inventory.LowVariants(p)
	assert.Len(t, low, 3)
}
