package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/velvetcart/admin-api/internal/domain/entity"
	"github.com/velvetcart/admin-api/internal/domain/repository"
)

var _ repository.ShippingRepository = (*ShippingRepo)(nil)

// ShippingRepo persists the single-row shipping configuration.
// The row has a fixed id of 1 so Update can upsert.
type ShippingRepo struct {
	q Querier
}

// NewShippingRepository builds the shipping adapter. Pass a pool or tx (Querier).
func NewShippingRepository(q Querier) *ShippingRepo {
	return &ShippingRepo{q: q}
}

// Get reads the shipping configuration. Returns defaults when unset.
func (r *ShippingRepo) Get() (*entity.ShippingSettings, error) {
	query := `
		SELECT flat_rate, free_shipping_threshold, carrier, updated_at
		FROM shipping_settings WHERE id = 1`
	var s entity.ShippingSettings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.FlatRate, &s.FreeShippingThreshold, &s.Carrier, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.ShippingSettings{}, nil
		}
		return nil, fmt.Errorf("get shipping settings: %w", err)
	}
	return &s, nil
}

// Update upserts the shipping configuration.
func (r *ShippingRepo) Update(s *entity.ShippingSettings) error {
	query := `
		INSERT INTO shipping_settings (id, flat_rate, free_shipping_threshold, carrier, updated_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id)
		DO UPDATE SET flat_rate = EXCLUDED.flat_rate,
			free_shipping_threshold = EXCLUDED.free_shipping_threshold,
			carrier = EXCLUDED.carrier,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		s.FlatRate, s.FreeShippingThreshold, s.Carrier, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert shipping settings: %w", err)
	}
	return nil
}
