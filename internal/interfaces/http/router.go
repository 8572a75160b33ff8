package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/velvetcart/admin-api/internal/application/analytics"
	"github.com/velvetcart/admin-api/internal/application/auth"
	"github.com/velvetcart/admin-api/internal/application/inventory"
	"github.com/velvetcart/admin-api/internal/application/report"
	"github.com/velvetcart/admin-api/internal/application/usecase"
	"github.com/velvetcart/admin-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	OrderUC     *usecase.OrderUseCase
	BannerUC    *usecase.BannerUseCase
	ShippingUC  *usecase.ShippingUseCase
	InventoryUC *inventory.InventoryUseCase
	AdjustUC    *inventory.AdjustmentUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *report.ReportUseCase
	JWTSecret   string
}

// Router registers the API routes. Everything except /api/auth requires a
// Bearer token with the admin role; staff tokens are rejected.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", MetricsMiddleware())

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	requireAdmin := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin)}

	// Products
	products := api.Group("/products", requireAdmin...)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories
	categories := api.Group("/categories", requireAdmin...)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Orders
	orders := api.Group("/orders", requireAdmin...)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/status", orderHandler.UpdateStatus)

	// Invoices (order receipt download)
	reportHandler := NewReportHandler(deps.ReportUC)
	invoices := api.Group("/invoices", requireAdmin...)
	invoices.Get("/:orderId/pdf", reportHandler.OrderPDF)

	// Banners
	banners := api.Group("/banners", requireAdmin...)
	bannerHandler := NewBannerHandler(deps.BannerUC)
	banners.Post("/", bannerHandler.Create)
	banners.Get("/", bannerHandler.List)
	banners.Put("/:id", bannerHandler.Update)
	banners.Delete("/:id", bannerHandler.Delete)

	// Shipping settings
	shipping := api.Group("/shipping", requireAdmin...)
	shippingHandler := NewShippingHandler(deps.ShippingUC)
	shipping.Get("/settings", shippingHandler.Get)
	shipping.Put("/settings", shippingHandler.Update)

	// Inventory
	inv := api.Group("/admin/inventory", requireAdmin...)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.AdjustUC)
	inv.Get("/", inventoryHandler.Overview)
	inv.Get("/low-stock", inventoryHandler.LowStock)
	inv.Get("/report.pdf", reportHandler.LowStockPDF)
	inv.Post("/adjust", inventoryHandler.Adjust)
	inv.Post("/reorder", inventoryHandler.Reorder)
	inv.Get("/history", inventoryHandler.History)
	inv.Get("/statistics", inventoryHandler.Statistics)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	analyticsGroup := api.Group("/analytics", requireAdmin...)
	analyticsGroup.Get("/dashboard", dashboardHandler.Summary)

	// Prometheus scrape endpoint (outside /api, unauthenticated)
	app.Get("/metrics", MetricsHandler())
}
