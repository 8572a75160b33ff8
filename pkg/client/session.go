package client

import (
	"context"

	"github.com/velvetcart/admin-api/internal/application/dto"
)

// Session drives the inventory workflows on top of a Client: it owns the
// overview snapshot and alert list, validates forms before anything hits
// the network, and after a successful mutation refetches both exactly once.
// There are no optimistic updates; the view only ever shows server state.
type Session struct {
	client *Client
	view   InventoryView
	alerts []dto.LowStockAlertDTO
}

// NewSession wraps a client in a workflow session with an empty view.
func NewSession(c *Client) *Session {
	return &Session{client: c}
}

// View exposes the held overview snapshot for searching and filtering.
func (s *Session) View() *InventoryView {
	return &s.view
}

// Alerts returns the last fetched low-stock alert list.
func (s *Session) Alerts() []dto.LowStockAlertDTO {
	return s.alerts
}

// Refresh refetches the overview and the alert list and replaces the held
// snapshot. On error the previous snapshot is kept.
func (s *Session) Refresh(ctx context.Context) error {
	overview, err := s.client.Overview(ctx)
	if err != nil {
		return err
	}
	alerts, err := s.client.LowStockAlerts(ctx)
	if err != nil {
		return err
	}
	s.view.SetSnapshot(overview)
	s.alerts = alerts.Alerts
	return nil
}

// SubmitAdjustment validates the form, submits the adjustment and, on
// success, refreshes the snapshot once and resets the form. A validation
// error returns before any request is sent; a server error leaves the form
// intact so the user can retry.
func (s *Session) SubmitAdjustment(ctx context.Context, form *AdjustmentForm) (*dto.MessageResponse, error) {
	req, err := form.Parse()
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Adjust(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.Refresh(ctx); err != nil {
		return resp, err
	}
	form.Reset()
	return resp, nil
}

// SubmitReorder mirrors SubmitAdjustment for the reorder dialog.
func (s *Session) SubmitReorder(ctx context.Context, form *ReorderForm) (*dto.MessageResponse, error) {
	req, err := form.Parse()
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Reorder(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.Refresh(ctx); err != nil {
		return resp, err
	}
	form.Reset()
	return resp, nil
}
