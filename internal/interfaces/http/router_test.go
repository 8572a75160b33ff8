package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/velvetcart/admin-api/internal/interfaces/http"
)

// newRouterApp registers the full route table. Use cases stay nil: these
// tests only exercise routing and the auth middleware, which run before any
// handler body.
func newRouterApp() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{JWTSecret: testJWTSecret})
	return app
}

var contractRoutes = []struct {
	method string
	path   string
}{
	{fiber.MethodGet, "/api/products"},
	{fiber.MethodPost, "/api/products"},
	{fiber.MethodGet, "/api/products/p1"},
	{fiber.MethodPut, "/api/products/p1"},
	{fiber.MethodDelete, "/api/products/p1"},
	{fiber.MethodGet, "/api/categories"},
	{fiber.MethodPost, "/api/categories"},
	{fiber.MethodPut, "/api/categories/c1"},
	{fiber.MethodDelete, "/api/categories/c1"},
	{fiber.MethodGet, "/api/orders"},
	{fiber.MethodGet, "/api/orders/o1"},
	{fiber.MethodPut, "/api/orders/o1/status"},
	{fiber.MethodGet, "/api/invoices/o1/pdf"},
	{fiber.MethodGet, "/api/banners"},
	{fiber.MethodPost, "/api/banners"},
	{fiber.MethodPut, "/api/banners/b1"},
	{fiber.MethodDelete, "/api/banners/b1"},
	{fiber.MethodGet, "/api/shipping/settings"},
	{fiber.MethodPut, "/api/shipping/settings"},
	{fiber.MethodGet, "/api/analytics/dashboard"},
	{fiber.MethodGet, "/api/admin/inventory"},
	{fiber.MethodGet, "/api/admin/inventory/low-stock"},
	{fiber.MethodGet, "/api/admin/inventory/report.pdf"},
	{fiber.MethodPost, "/api/admin/inventory/adjust"},
	{fiber.MethodPost, "/api/admin/inventory/reorder"},
	{fiber.MethodGet, "/api/admin/inventory/history"},
	{fiber.MethodGet, "/api/admin/inventory/statistics"},
}

// Every documented route must exist at its documented path and reject
// anonymous requests. A 404 here means the path moved; a 200 means the auth
// middleware fell off the group.
func TestRouter_DocumentedPathsExistAndRequireAuth(t *testing.T) {
	app := newRouterApp()

	for _, route := range contractRoutes {
		resp, err := app.Test(httptest.NewRequest(route.method, route.path, nil))
		require.NoErrorf(t, err, "%s %s", route.method, route.path)
		assert.Equalf(t, fiber.StatusUnauthorized, resp.StatusCode,
			"%s %s must be mounted and token-protected", route.method, route.path)
	}
}

// The catalog and store resources live directly under /api, not under
// /api/admin; only the inventory workflow keeps the /api/admin prefix.
func TestRouter_NoAdminPrefixOnCatalogRoutes(t *testing.T) {
	app := newRouterApp()

	gone := []string{
		"/api/admin/products",
		"/api/admin/categories",
		"/api/admin/orders",
		"/api/admin/banners",
		"/api/admin/shipping/settings",
		"/api/admin/dashboard",
		"/api/admin/inventory/low-stock/pdf",
	}
	for _, path := range gone {
		req := httptest.NewRequest(fiber.MethodGet, path, nil)
		req.Header.Set("Authorization", tokenForRole(t, "admin"))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equalf(t, fiber.StatusNotFound, resp.StatusCode, "GET %s must not be mounted", path)
	}
}

// Staff tokens authenticate but are not authorized for the admin panel.
func TestRouter_StaffRoleRejected(t *testing.T) {
	app := newRouterApp()

	req := httptest.NewRequest(fiber.MethodGet, "/api/products", nil)
	req.Header.Set("Authorization", tokenForRole(t, "staff"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
