package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/gofiber/contrib/swagger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const specPath = "../../docs/swagger.json"

// The docs middleware reads its spec file at construction time, so the
// static spec has to ship with the repo for the server to expose /docs.
func TestSwaggerSpecShipsWithRepo(t *testing.T) {
	data, err := os.ReadFile(specPath)
	require.NoError(t, err, "docs/swagger.json must be committed")

	var spec struct {
		Swagger string `json:"swagger"`
		Info    struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(data, &spec))
	assert.Equal(t, "2.0", spec.Swagger)
	assert.NotEmpty(t, spec.Info.Title)

	for _, path := range []string{
		"/api/products",
		"/api/orders",
		"/api/invoices/{orderId}/pdf",
		"/api/shipping/settings",
		"/api/analytics/dashboard",
		"/api/admin/inventory",
		"/api/admin/inventory/report.pdf",
	} {
		assert.Contains(t, spec.Paths, path)
	}
}

// swagger.New panics on a missing or unreadable spec; building it from the
// shipped file must not.
func TestSwaggerMiddlewareBuildsFromShippedSpec(t *testing.T) {
	assert.NotPanics(t, func() {
		swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: specPath,
			Path:     "docs",
			Title:    "VelvetCart Admin API",
		})
	})
}
