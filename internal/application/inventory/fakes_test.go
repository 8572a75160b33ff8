package inventory_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	appinv "github.com/velvetcart/admin-api/internal/application/inventory"
	"github.com/velvetcart/admin-api/internal/application/dto"
	"github.com/velvetcart/admin-api/internal/domain"
	"github.com/velvetcart/admin-api/internal/domain/entity"
	"github.com/velvetcart/admin-api/internal/domain/repository"
)

// In-memory fakes for use case tests. State lives on memStore so the tx
// runner and the read repos share one world.

type memStore struct {
	products    map[string]*entity.Product
	categories  []*entity.Category
	adjustments []*entity.StockAdjustment
	reorders    []*entity.ReorderRequest
}

func newMemStore(products ...*entity.Product) *memStore {
	s := &memStore{products: map[string]*entity.Product{}}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

// ── product repository ──

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *memProductRepo) Update(p *entity.Product) error {
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[p.ID] = p
	return nil
}
func (r *memProductRepo) Delete(id string) error { delete(r.s.products, id); return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	all, _ := r.s.productList()
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}
func (r *memProductRepo) ListAll() ([]*entity.Product, error) { return r.s.productList() }

func (s *memStore) productList() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}

// ── category repository ──

type memCategoryRepo struct{ s *memStore }

func (r *memCategoryRepo) Create(c *entity.Category) error { r.s.categories = append(r.s.categories, c); return nil }
func (r *memCategoryRepo) Update(*entity.Category) error   { return nil }
func (r *memCategoryRepo) Delete(string) error             { return nil }
func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCategoryRepo) List() ([]*entity.Category, error) { return r.s.categories, nil }

// ── stock / adjustment / reorder repositories (tx side) ──

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) GetVariantForUpdate(productID, size, color string) (*entity.Variant, error) {
	p, ok := r.s.products[productID]
	if !ok {
		return nil, nil
	}
	v := p.Variant(size, color)
	if v == nil {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *memStockRepo) SetQuantity(productID, size, color string, quantity int) error {
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	v := p.Variant(size, color)
	if v == nil {
		return domain.ErrNotFound
	}
	v.Quantity = quantity
	return nil
}

type memAdjustmentRepo struct{ s *memStore }

func (r *memAdjustmentRepo) Create(a *entity.StockAdjustment) error {
	r.s.adjustments = append(r.s.adjustments, a)
	return nil
}
func (r *memAdjustmentRepo) List(limit, offset int) ([]*entity.StockAdjustment, error) {
	// newest first
	all := make([]*entity.StockAdjustment, len(r.s.adjustments))
	copy(all, r.s.adjustments)
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}
func (r *memAdjustmentRepo) Count() (int, error) { return len(r.s.adjustments), nil }

type memReorderRepo struct{ s *memStore }

func (r *memReorderRepo) Create(req *entity.ReorderRequest) error {
	r.s.reorders = append(r.s.reorders, req)
	return nil
}

// ── tx runner: snapshots state and restores it when fn fails ──

type memTxRunner struct{ s *memStore }

func (tr *memTxRunner) Run(_ context.Context, fn func(
	repository.StockRepository,
	repository.AdjustmentRepository,
	repository.ReorderRequestRepository,
) error) error {
	backupProducts := map[string]*entity.Product{}
	for id, p := range tr.s.products {
		cp := *p
		cp.Variants = append([]entity.Variant(nil), p.Variants...)
		backupProducts[id] = &cp
	}
	backupAdj := append([]*entity.StockAdjustment(nil), tr.s.adjustments...)
	backupReorders := append([]*entity.ReorderRequest(nil), tr.s.reorders...)

	err := fn(&memStockRepo{tr.s}, &memAdjustmentRepo{tr.s}, &memReorderRepo{tr.s})
	if err != nil {
		tr.s.products = backupProducts
		tr.s.adjustments = backupAdj
		tr.s.reorders = backupReorders
	}
	return err
}

// ── analytics repository ──

type memAnalyticsRepo struct{ s *memStore }

func (r *memAnalyticsRepo) CountAdjustmentsByType(_ context.Context, start, end time.Time) ([]repository.AdjustmentTypeCount, error) {
	byType := map[string]*repository.AdjustmentTypeCount{}
	for _, a := range r.s.adjustments {
		if a.CreatedAt.Before(start) || !a.CreatedAt.Before(end) {
			continue
		}
		c, ok := byType[a.AdjustmentType]
		if !ok {
			c = &repository.AdjustmentTypeCount{AdjustmentType: a.AdjustmentType}
			byType[a.AdjustmentType] = c
		}
		c.Count++
		if a.Adjustment < 0 {
			c.TotalQuantity -= a.Adjustment
		} else {
			c.TotalQuantity += a.Adjustment
		}
	}
	out := make([]repository.AdjustmentTypeCount, 0, len(byType))
	for _, c := range byType {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AdjustmentType < out[j].AdjustmentType })
	return out, nil
}

func (r *memAnalyticsRepo) DailyAdjustmentTrend(_ context.Context, start, end time.Time) ([]repository.DailyAdjustmentCount, error) {
	byDay := map[string]*repository.DailyAdjustmentCount{}
	for _, a := range r.s.adjustments {
		if a.CreatedAt.Before(start) || !a.CreatedAt.Before(end) {
			continue
		}
		day := a.CreatedAt.Truncate(24 * time.Hour)
		key := day.Format("2006-01-02")
		c, ok := byDay[key]
		if !ok {
			c = &repository.DailyAdjustmentCount{Day: day}
			byDay[key] = c
		}
		c.Count++
	}
	out := make([]repository.DailyAdjustmentCount, 0, len(byDay))
	for _, c := range byDay {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

func (r *memAnalyticsRepo) TopAdjustedProducts(_ context.Context, start, end time.Time, limit int) ([]repository.ProductAdjustmentCount, error) {
	byProduct := map[string]*repository.ProductAdjustmentCount{}
	for _, a := range r.s.adjustments {
		if a.CreatedAt.Before(start) || !a.CreatedAt.Before(end) {
			continue
		}
		c, ok := byProduct[a.ProductID]
		if !ok {
			c = &repository.ProductAdjustmentCount{ProductID: a.ProductID, ProductName: a.ProductName, SKU: a.SKU}
			byProduct[a.ProductID] = c
		}
		c.Count++
	}
	out := make([]repository.ProductAdjustmentCount, 0, len(byProduct))
	for _, c := range byProduct {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memAnalyticsRepo) CountProducts(context.Context) (int, int, error) {
	active := 0
	for _, p := range r.s.products {
		if p.Active {
			active++
		}
	}
	return len(r.s.products), active, nil
}

func (r *memAnalyticsRepo) CountOrdersByStatus(context.Context) (map[string]int, error) {
	return map[string]int{}, nil
}

func (r *memAnalyticsRepo) Revenue(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

// ── overview cache ──

type memCache struct {
	stored      *dto.OverviewResponse
	hits        int
	invalidated int
}

func (c *memCache) Get(context.Context) (*dto.OverviewResponse, bool) {
	if c.stored == nil {
		return nil, false
	}
	c.hits++
	return c.stored, true
}
func (c *memCache) Set(_ context.Context, o *dto.OverviewResponse) { c.stored = o }
func (c *memCache) Invalidate(context.Context)                     { c.stored = nil; c.invalidated++ }

var _ appinv.OverviewCache = (*memCache)(nil)
var _ appinv.TxRunner = (*memTxRunner)(nil)
var _ repository.AnalyticsRepository = (*memAnalyticsRepo)(nil)
