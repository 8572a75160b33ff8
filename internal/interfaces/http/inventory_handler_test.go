package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvetcart/admin-api/internal/application/dto"
	appinventory "github.com/velvetcart/admin-api/internal/application/inventory"
	"github.com/velvetcart/admin-api/internal/domain/entity"
	"github.com/velvetcart/admin-api/internal/domain/repository"
	apphttp "github.com/velvetcart/admin-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory stubs: just enough store to exercise the HTTP layer end to end.
// ──────────────────────────────────────────────────────────────────────────────

type stubStore struct {
	products    []*entity.Product
	adjustments []*entity.StockAdjustment
	reorders    []*entity.ReorderRequest
}

type stubProductRepo struct{ s *stubStore }

func (r *stubProductRepo) Create(*entity.Product) error { return nil }
func (r *stubProductRepo) Update(*entity.Product) error { return nil }
func (r *stubProductRepo) Delete(string) error          { return nil }
func (r *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *stubProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return r.s.products, nil
}
func (r *stubProductRepo) ListAll() ([]*entity.Product, error) { return r.s.products, nil }

type stubCategoryRepo struct{}

func (stubCategoryRepo) Create(*entity.Category) error { return nil }
func (stubCategoryRepo) Update(*entity.Category) error { return nil }
func (stubCategoryRepo) Delete(string) error           { return nil }
func (stubCategoryRepo) GetByID(string) (*entity.Category, error) {
	return nil, nil
}
func (stubCategoryRepo) List() ([]*entity.Category, error) { return nil, nil }

type stubStockRepo struct{ s *stubStore }

func (r *stubStockRepo) GetVariantForUpdate(productID, size, color string) (*entity.Variant, error) {
	for _, p := range r.s.products {
		if p.ID == productID {
			if v := p.Variant(size, color); v != nil {
				copied := *v
				return &copied, nil
			}
		}
	}
	return nil, nil
}

func (r *stubStockRepo) SetQuantity(productID, size, color string, quantity int) error {
	for _, p := range r.s.products {
		if p.ID == productID {
			if v := p.Variant(size, color); v != nil {
				v.Quantity = quantity
			}
		}
	}
	return nil
}

type stubAdjustmentRepo struct{ s *stubStore }

func (r *stubAdjustmentRepo) Create(a *entity.StockAdjustment) error {
	r.s.adjustments = append(r.s.adjustments, a)
	return nil
}
func (r *stubAdjustmentRepo) List(limit, offset int) ([]*entity.StockAdjustment, error) {
	if offset >= len(r.s.adjustments) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.s.adjustments) {
		end = len(r.s.adjustments)
	}
	return r.s.adjustments[offset:end], nil
}
func (r *stubAdjustmentRepo) Count() (int, error) { return len(r.s.adjustments), nil }

type stubReorderRepo struct{ s *stubStore }

func (r *stubReorderRepo) Create(req *entity.ReorderRequest) error {
	r.s.reorders = append(r.s.reorders, req)
	return nil
}

type stubTxRunner struct{ s *stubStore }

func (r *stubTxRunner) Run(_ context.Context, fn func(
	repository.StockRepository,
	repository.AdjustmentRepository,
	repository.ReorderRequestRepository,
) error) error {
	return fn(&stubStockRepo{r.s}, &stubAdjustmentRepo{r.s}, &stubReorderRepo{r.s})
}

type stubAnalyticsRepo struct{}

func (stubAnalyticsRepo) CountAdjustmentsByType(context.Context, time.Time, time.Time) ([]repository.AdjustmentTypeCount, error) {
	return []repository.AdjustmentTypeCount{{AdjustmentType: "manual", Count: 3, TotalQuantity: 12}}, nil
}
func (stubAnalyticsRepo) DailyAdjustmentTrend(context.Context, time.Time, time.Time) ([]repository.DailyAdjustmentCount, error) {
	return nil, nil
}
func (stubAnalyticsRepo) TopAdjustedProducts(context.Context, time.Time, time.Time, int) ([]repository.ProductAdjustmentCount, error) {
	return nil, nil
}
func (stubAnalyticsRepo) CountProducts(context.Context) (int, int, error) { return 0, 0, nil }
func (stubAnalyticsRepo) CountOrdersByStatus(context.Context) (map[string]int, error) {
	return nil, nil
}
func (stubAnalyticsRepo) Revenue(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App wiring
// ──────────────────────────────────────────────────────────────────────────────

func seededStore() *stubStore {
	return &stubStore{
		products: []*entity.Product{{
			ID:                "p1",
			SKU:               "TS-001",
			Name:              "Classic Tee",
			Brand:             "Velvet",
			Price:             decimal.NewFromInt(25),
			Sizes:             []string{"M", "L"},
			Colors:            []string{"black"},
			Variants:          []entity.Variant{{Size: "M", Color: "black", Quantity: 8}, {Size: "L", Color: "black", Quantity: 2}},
			LowStockThreshold: 10,
			ReorderQuantity:   20,
			Active:            true,
		}},
	}
}

func newInventoryApp(s *stubStore) *fiber.App {
	productRepo := &stubProductRepo{s}
	readUC := appinventory.NewInventoryUseCase(productRepo, stubCategoryRepo{}, &stubAdjustmentRepo{s}, stubAnalyticsRepo{}, nil)
	adjustUC := appinventory.NewAdjustmentUseCase(&stubTxRunner{s}, productRepo, nil)

	app := fiber.New()
	admin := app.Group("/api/admin", apphttp.AuthMiddleware(testJWTSecret), apphttp.RequireRole("admin"))
	h := apphttp.NewInventoryHandler(readUC, adjustUC)
	admin.Get("/inventory", h.Overview)
	admin.Get("/inventory/low-stock", h.LowStock)
	admin.Post("/inventory/adjust", h.Adjust)
	admin.Post("/inventory/reorder", h.Reorder)
	admin.Get("/inventory/history", h.History)
	admin.Get("/inventory/statistics", h.Statistics)
	return app
}

func adminRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryOverview_ReturnsItemsAndStatistics(t *testing.T) {
	app := newInventoryApp(seededStore())
	resp := adminRequest(t, app, http.MethodGet, "/api/admin/inventory", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.OverviewResponse
	decodeBody(t, resp, &out)
	assert.True(t, out.Success)
	require.Len(t, out.Inventory, 1)
	assert.Equal(t, "TS-001", out.Inventory[0].SKU)
	assert.Equal(t, 10, out.Inventory[0].TotalStock)
	assert.Equal(t, "low_stock", out.Inventory[0].Status)
	assert.Equal(t, 1, out.Statistics.TotalProducts)
	assert.Equal(t, 1, out.Statistics.LowStockCount)
}

func TestInventoryOverview_RequiresToken(t *testing.T) {
	app := newInventoryApp(seededStore())
	req := httptest.NewRequest(http.MethodGet, "/api/admin/inventory", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestInventoryOverview_StaffForbidden(t *testing.T) {
	app := newInventoryApp(seededStore())
	req := httptest.NewRequest(http.MethodGet, "/api/admin/inventory", nil)
	req.Header.Set("Authorization", tokenForRole(t, "staff"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdjust_HappyPath_MutatesStockAndAppendsAudit(t *testing.T) {
	s := seededStore()
	app := newInventoryApp(s)

	resp := adminRequest(t, app, http.MethodPost, "/api/admin/inventory/adjust", dto.AdjustRequest{
		ProductID: "p1", Size: "M", Color: "black",
		Adjustment: -5, AdjustmentType: "manual", Reason: "cycle count",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.MessageResponse
	decodeBody(t, resp, &out)
	assert.True(t, out.Success)

	assert.Equal(t, 3, s.products[0].Variant("M", "black").Quantity)
	require.Len(t, s.adjustments, 1)
	assert.Equal(t, 8, s.adjustments[0].PreviousQuantity)
	assert.Equal(t, 3, s.adjustments[0].NewQuantity)
}

func TestAdjust_ZeroDelta_Returns400(t *testing.T) {
	app := newInventoryApp(seededStore())
	resp := adminRequest(t, app, http.MethodPost, "/api/admin/inventory/adjust", dto.AdjustRequest{
		ProductID: "p1", Size: "M", Color: "black",
		Adjustment: 0, AdjustmentType: "manual", Reason: "noop",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdjust_UnknownProduct_Returns404(t *testing.T) {
	app := newInventoryApp(seededStore())
	resp := adminRequest(t, app, http.MethodPost, "/api/admin/inventory/adjust", dto.AdjustRequest{
		ProductID: "ghost", Size: "M", Color: "black",
		Adjustment: 1, AdjustmentType: "manual", Reason: "x",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdjust_BelowZero_Returns409(t *testing.T) {
	s := seededStore()
	app := newInventoryApp(s)
	resp := adminRequest(t, app, http.MethodPost, "/api/admin/inventory/adjust", dto.AdjustRequest{
		ProductID: "p1", Size: "L", Color: "black",
		Adjustment: -3, AdjustmentType: "manual", Reason: "x",
	})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
	// Stock untouched
	assert.Equal(t, 2, s.products[0].Variant("L", "black").Quantity)
}

func TestReorder_ExplicitVariant_AppliesDefaultQuantity(t *testing.T) {
	s := seededStore()
	app := newInventoryApp(s)

	resp := adminRequest(t, app, http.MethodPost, "/api/admin/inventory/reorder", dto.ReorderRequestDTO{
		ProductID: "p1", Size: "L", Color: "black",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 22, s.products[0].Variant("L", "black").Quantity)
	require.Len(t, s.reorders, 1)
	assert.Equal(t, 20, s.reorders[0].Quantity)
}

func TestReorder_NoLowVariants_Returns409(t *testing.T) {
	s := seededStore()
	// Lift everything well above the threshold
	for i := range s.products[0].Variants {
		s.products[0].Variants[i].Quantity = 50
	}
	app := newInventoryApp(s)

	resp := adminRequest(t, app, http.MethodPost, "/api/admin/inventory/reorder", dto.ReorderRequestDTO{
		ProductID: "p1",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHistory_FixedPageSize(t *testing.T) {
	s := seededStore()
	for i := 0; i < 60; i++ {
		s.adjustments = append(s.adjustments, &entity.StockAdjustment{ID: "a", ProductID: "p1"})
	}
	app := newInventoryApp(s)

	resp := adminRequest(t, app, http.MethodGet, "/api/admin/inventory/history?page=2", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.HistoryResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, 2, out.Pagination.Page)
	assert.Equal(t, 50, out.Pagination.Limit)
	assert.Equal(t, 60, out.Pagination.Total)
	assert.Equal(t, 2, out.Pagination.TotalPages)
	assert.Len(t, out.History, 10)
}

func TestStatistics_NormalizesPeriod(t *testing.T) {
	app := newInventoryApp(seededStore())

	resp := adminRequest(t, app, http.MethodGet, "/api/admin/inventory/statistics?period=bogus", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.StatisticsResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "7d", out.Statistics.Period)
	require.Len(t, out.Statistics.ByType, 1)
	assert.Equal(t, "manual", out.Statistics.ByType[0].AdjustmentType)
}
