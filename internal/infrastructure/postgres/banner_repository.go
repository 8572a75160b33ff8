package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/velvetcart/admin-api/internal/domain"
	"github.com/velvetcart/admin-api/internal/domain/entity"
	"github.com/velvetcart/admin-api/internal/domain/repository"
)

var _ repository.BannerRepository = (*BannerRepo)(nil)

// BannerRepo implements BannerRepository over PostgreSQL.
type BannerRepo struct {
	q Querier
}

// NewBannerRepository builds the banner adapter. Pass a pool or tx (Querier).
func NewBannerRepository(q Querier) *BannerRepo {
	return &BannerRepo{q: q}
}

// Create persists a new banner.
func (r *BannerRepo) Create(b *entity.Banner) error {
	query := `
		INSERT INTO banners (id, title, image_url, link_url, position, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Title, b.ImageURL, b.LinkURL, b.Position, b.Active, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}
	return nil
}

// Update rewrites an existing banner.
func (r *BannerRepo) Update(b *entity.Banner) error {
	query := `
		UPDATE banners SET title = $2, image_url = $3, link_url = $4, position = $5, active = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		b.ID, b.Title, b.ImageURL, b.LinkURL, b.Position, b.Active, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update banner: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a banner by ID.
func (r *BannerRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID fetches one banner. Returns nil when missing.
func (r *BannerRepo) GetByID(id string) (*entity.Banner, error) {
	query := `
		SELECT id, title, image_url, link_url, position, active, created_at, updated_at
		FROM banners WHERE id = $1`
	var b entity.Banner
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Title, &b.ImageURL, &b.LinkURL, &b.Position, &b.Active, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banner: %w", err)
	}
	return &b, nil
}

// List returns banners ordered by position.
func (r *BannerRepo) List() ([]*entity.Banner, error) {
	query := `
		SELECT id, title, image_url, link_url, position, active, created_at, updated_at
		FROM banners ORDER BY position, created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()
	var list []*entity.Banner
	for rows.Next() {
		var b entity.Banner
		if err := rows.Scan(&b.ID, &b.Title, &b.ImageURL, &b.LinkURL, &b.Position, &b.Active, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
