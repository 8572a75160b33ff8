package inventory

import (
	"context"

	"github.com/velvetcart/admin-api/internal/application/dto"
	"github.com/velvetcart/admin-api/internal/domain/repository"
)

// TxRunner executes a function inside a DB transaction, passing repositories
// bound to that tx. Guarantees the variant write and its audit record commit
// or roll back together.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		adjustmentRepo repository.AdjustmentRepository,
		reorderRepo repository.ReorderRequestRepository,
	) error) error
}

// OverviewCache is the read-through cache port for the overview envelope.
// Implementations must degrade to a no-op when the backing store is down.
type OverviewCache interface {
	Get(ctx context.Context) (*dto.OverviewResponse, bool)
	Set(ctx context.Context, overview *dto.OverviewResponse)
	Invalidate(ctx context.Context)
}
