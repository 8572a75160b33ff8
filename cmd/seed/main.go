// seed populates a development database with a demo catalog: an admin
// account, a handful of categories, products with variant stock grids, a
// storefront banner and the shipping settings row.
//
// Usage: go run ./cmd/seed
// Reads the same configuration as the API server (DATABASE_URL or DB_* vars).
// Idempotent for the admin user; duplicate catalog rows are skipped by SKU
// and slug uniqueness.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/velvetcart/admin-api/internal/domain"
	"github.com/velvetcart/admin-api/internal/domain/entity"
	"github.com/velvetcart/admin-api/internal/infrastructure/postgres"
	"github.com/velvetcart/admin-api/pkg/config"
)

const (
	adminEmail    = "admin@velvetcart.local"
	adminPassword = "velvetcart-dev"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("load configuration", err)
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fail("connect to PostgreSQL", err)
	}
	defer pool.Close()

	if err := seedAdmin(postgres.NewUserRepository(pool)); err != nil {
		fail("seed admin user", err)
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	categoryIDs, err := seedCategories(categoryRepo)
	if err != nil {
		fail("seed categories", err)
	}

	if err := seedProducts(postgres.NewProductRepository(pool), categoryIDs); err != nil {
		fail("seed products", err)
	}
	if err := seedBanner(postgres.NewBannerRepository(pool)); err != nil {
		fail("seed banner", err)
	}
	if err := seedShipping(postgres.NewShippingRepository(pool)); err != nil {
		fail("seed shipping settings", err)
	}

	fmt.Printf("demo catalog seeded; log in as %s / %s\n", adminEmail, adminPassword)
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}

func seedAdmin(repo *postgres.UserRepo) error {
	existing, err := repo.FindByEmail(adminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	return repo.Create(&entity.User{
		ID:           uuid.NewString(),
		Email:        adminEmail,
		PasswordHash: string(hash),
		Name:         "Demo Admin",
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func seedCategories(repo *postgres.CategoryRepo) (map[string]string, error) {
	categories := []entity.Category{
		{Name: "Tops", Slug: "tops", Description: "T-shirts, blouses and shirts"},
		{Name: "Bottoms", Slug: "bottoms", Description: "Jeans, trousers and skirts"},
		{Name: "Accessories", Slug: "accessories", Description: "Bags, belts and scarves"},
	}

	ids := make(map[string]string, len(categories))
	now := time.Now().UTC()
	for _, c := range categories {
		c.ID = uuid.NewString()
		c.Active = true
		c.CreatedAt = now
		c.UpdatedAt = now
		err := repo.Create(&c)
		if errors.Is(err, domain.ErrDuplicate) {
			existing, lookErr := findCategoryBySlug(repo, c.Slug)
			if lookErr != nil {
				return nil, lookErr
			}
			ids[c.Slug] = existing
			continue
		}
		if err != nil {
			return nil, err
		}
		ids[c.Slug] = c.ID
	}
	return ids, nil
}

func findCategoryBySlug(repo *postgres.CategoryRepo, slug string) (string, error) {
	all, err := repo.List()
	if err != nil {
		return "", err
	}
	for _, c := range all {
		if c.Slug == slug {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("category %q not found after duplicate insert", slug)
}

func seedProducts(repo *postgres.ProductRepo, categoryIDs map[string]string) error {
	now := time.Now().UTC()
	products := []entity.Product{
		{
			SKU: "TS-001", Name: "Classic Tee", Brand: "VelvetCart", CategoryID: categoryIDs["tops"],
			Description: "Plain cotton t-shirt",
			Price:       decimal.NewFromFloat(19.90), Cost: decimal.NewFromFloat(6.50),
			Sizes: []string{"S", "M", "L"}, Colors: []string{"Black", "White"},
			Variants: []entity.Variant{
				{Size: "S", Color: "Black", Quantity: 25}, {Size: "S", Color: "White", Quantity: 18},
				{Size: "M", Color: "Black", Quantity: 40}, {Size: "M", Color: "White", Quantity: 32},
				{Size: "L", Color: "Black", Quantity: 12}, {Size: "L", Color: "White", Quantity: 7},
			},
			LowStockThreshold: 10, ReorderQuantity: 30,
		},
		{
			SKU: "JN-014", Name: "Slim Denim", Brand: "Northline", CategoryID: categoryIDs["bottoms"],
			Description: "Slim-fit stretch jeans",
			Price:       decimal.NewFromFloat(54.00), Cost: decimal.NewFromFloat(21.00),
			Sizes: []string{"30", "32", "34"}, Colors: []string{"Indigo"},
			Variants: []entity.Variant{
				{Size: "30", Color: "Indigo", Quantity: 9},
				{Size: "32", Color: "Indigo", Quantity: 4},
				{Size: "34", Color: "Indigo", Quantity: 0},
			},
			LowStockThreshold: 12, ReorderQuantity: 20,
		},
		{
			SKU: "AC-203", Name: "Canvas Tote", Brand: "VelvetCart", CategoryID: categoryIDs["accessories"],
			Description: "Everyday canvas tote bag",
			Price:       decimal.NewFromFloat(24.50), Cost: decimal.NewFromFloat(8.00),
			Sizes: []string{"One Size"}, Colors: []string{"Natural", "Navy"},
			Variants: []entity.Variant{
				{Size: "One Size", Color: "Natural", Quantity: 60},
				{Size: "One Size", Color: "Navy", Quantity: 45},
			},
			LowStockThreshold: 15, ReorderQuantity: 50,
		},
	}

	for _, p := range products {
		p.ID = uuid.NewString()
		p.Active = true
		p.CreatedAt = now
		p.UpdatedAt = now
		err := repo.Create(&p)
		if errors.Is(err, domain.ErrDuplicate) {
			continue // already seeded
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func seedBanner(repo *postgres.BannerRepo) error {
	existing, err := repo.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	now := time.Now().UTC()
	return repo.Create(&entity.Banner{
		ID:        uuid.NewString(),
		Title:     "Summer Sale",
		ImageURL:  "https://cdn.velvetcart.local/banners/summer-sale.jpg",
		LinkURL:   "/collections/sale",
		Position:  1,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func seedShipping(repo *postgres.ShippingRepo) error {
	return repo.Update(&entity.ShippingSettings{
		FlatRate:              decimal.NewFromFloat(4.90),
		FreeShippingThreshold: decimal.NewFromInt(75),
		Carrier:               "DHL",
		UpdatedAt:             time.Now().UTC(),
	})
}
