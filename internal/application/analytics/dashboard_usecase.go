// Package analytics holds the use cases behind the admin dashboard widgets.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/velvetcart/admin-api/internal/application/dto"
	domaininv "github.com/velvetcart/admin-api/internal/domain/inventory"
	"github.com/velvetcart/admin-api/internal/domain/repository"
)

// DashboardUseCase builds the summary shown on the dashboard landing page.
//
// Data source: AnalyticsRepository read-only queries plus the product list
// for the low-stock counter. The widget queries are independent, so they
// run in parallel the way the panel fires its fetches.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, productRepo repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, productRepo: productRepo}
}

// GetSummary runs four independent queries concurrently:
//  1. product counts
//  2. order counts by status
//  3. today + month-to-date revenue
//  4. low-stock product count
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := todayStart.Add(24 * time.Hour)

	type productsResult struct {
		total, active int
		err           error
	}
	type ordersResult struct {
		byStatus map[string]int
		err      error
	}
	type revenueResult struct {
		today, month decimal.Decimal
		err          error
	}
	type lowStockResult struct {
		count int
		err   error
	}

	productsCh := make(chan productsResult, 1)
	ordersCh := make(chan ordersResult, 1)
	revenueCh := make(chan revenueResult, 1)
	lowStockCh := make(chan lowStockResult, 1)

	go func() {
		total, active, err := uc.analyticsRepo.CountProducts(ctx)
		productsCh <- productsResult{total, active, err}
	}()
	go func() {
		byStatus, err := uc.analyticsRepo.CountOrdersByStatus(ctx)
		ordersCh <- ordersResult{byStatus, err}
	}()
	go func() {
		today, err := uc.analyticsRepo.Revenue(ctx, todayStart, end)
		if err != nil {
			revenueCh <- revenueResult{err: err}
			return
		}
		month, err := uc.analyticsRepo.Revenue(ctx, monthStart, end)
		revenueCh <- revenueResult{today: today, month: month, err: err}
	}()
	go func() {
		products, err := uc.productRepo.ListAll()
		if err != nil {
			lowStockCh <- lowStockResult{err: err}
			return
		}
		count := 0
		for _, p := range products {
			switch domaininv.Status(p) {
			case domaininv.StatusLowStock, domaininv.StatusReorder, domaininv.StatusOutOfStock:
				count++
			}
		}
		lowStockCh <- lowStockResult{count: count}
	}()

	products := <-productsCh
	orders := <-ordersCh
	revenue := <-revenueCh
	lowStock := <-lowStockCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard product counts: %w", products.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("dashboard order counts: %w", orders.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard revenue: %w", revenue.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard low stock: %w", lowStock.err)
	}

	return &dto.DashboardSummaryDTO{
		Success:        true,
		TotalProducts:  products.total,
		ActiveProducts: products.active,
		OrdersByStatus: orders.byStatus,
		TodayRevenue:   revenue.today,
		MonthRevenue:   revenue.month,
		LowStockCount:  lowStock.count,
	}, nil
}
