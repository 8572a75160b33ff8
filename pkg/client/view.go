package client

import (
	"strings"

	"github.com/velvetcart/admin-api/internal/application/dto"
)

// InventoryView holds the last fetched overview snapshot and derives
// filtered subsets from it. The snapshot itself is never mutated, so
// search and filter results stay consistent until the next refetch.
type InventoryView struct {
	statistics dto.InventoryStatisticsDTO
	items      []dto.InventoryItemDTO
}

// SetSnapshot replaces the held snapshot with a freshly fetched overview.
func (v *InventoryView) SetSnapshot(overview *dto.OverviewResponse) {
	v.statistics = overview.Statistics
	v.items = overview.Inventory
}

// Statistics returns the header statistics of the current snapshot.
func (v *InventoryView) Statistics() dto.InventoryStatisticsDTO {
	return v.statistics
}

// Items returns the unfiltered snapshot rows.
func (v *InventoryView) Items() []dto.InventoryItemDTO {
	return v.items
}

// Search returns the rows whose name or brand contains the query,
// case-insensitively. An empty query returns the full snapshot.
func (v *InventoryView) Search(query string) []dto.InventoryItemDTO {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return v.items
	}
	out := make([]dto.InventoryItemDTO, 0, len(v.items))
	for _, item := range v.items {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Brand), q) {
			out = append(out, item)
		}
	}
	return out
}

// FilterStatus returns the rows with exactly the given status. An empty
// status returns the full snapshot.
func (v *InventoryView) FilterStatus(status string) []dto.InventoryItemDTO {
	if status == "" {
		return v.items
	}
	out := make([]dto.InventoryItemDTO, 0, len(v.items))
	for _, item := range v.items {
		if item.Status == status {
			out = append(out, item)
		}
	}
	return out
}
