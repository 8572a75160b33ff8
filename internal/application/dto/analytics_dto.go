package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO response of GET /api/analytics/dashboard.
// All numbers are server-aggregated; the panel renders them as-is.
type DashboardSummaryDTO struct {
	Success        bool            `json:"success"`
	TotalProducts  int             `json:"totalProducts"`
	ActiveProducts int             `json:"activeProducts"`
	OrdersByStatus map[string]int  `json:"ordersByStatus"`
	TodayRevenue   decimal.Decimal `json:"todayRevenue"`
	MonthRevenue   decimal.Decimal `json:"monthRevenue"`
	LowStockCount  int             `json:"lowStockCount"`
}
