package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	appanalytics "github.com/velvetcart/admin-api/internal/application/analytics"
	"github.com/velvetcart/admin-api/internal/application/auth"
	appinventory "github.com/velvetcart/admin-api/internal/application/inventory"
	"github.com/velvetcart/admin-api/internal/application/report"
	"github.com/velvetcart/admin-api/internal/application/usecase"
	"github.com/velvetcart/admin-api/internal/infrastructure/cache"
	infrapdf "github.com/velvetcart/admin-api/internal/infrastructure/pdf"
	"github.com/velvetcart/admin-api/internal/infrastructure/postgres"
	httpRouter "github.com/velvetcart/admin-api/internal/interfaces/http"
	"github.com/velvetcart/admin-api/pkg/config"
	"github.com/velvetcart/admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	// Overview cache is optional: no REDIS_ADDR means every request hits
	// the database directly.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, overview cache disabled")
			redisClient = nil
		}
	}
	overviewCache := cache.NewOverviewCache(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second, log)

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	bannerRepo := postgres.NewBannerRepository(pool)
	shippingRepo := postgres.NewShippingRepository(pool)
	adjustmentRepo := postgres.NewAdjustmentRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo)
	bannerUC := usecase.NewBannerUseCase(bannerRepo)
	shippingUC := usecase.NewShippingUseCase(shippingRepo)
	inventoryUC := appinventory.NewInventoryUseCase(productRepo, categoryRepo, adjustmentRepo, analyticsRepo, overviewCache)
	adjustUC := appinventory.NewAdjustmentUseCase(txRunner, productRepo, overviewCache)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, productRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := report.NewReportUseCase(orderRepo, inventoryUC, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	// The middleware reads the spec file eagerly and panics when it is
	// missing, so skip it rather than take the whole API down.
	const swaggerSpec = "./docs/swagger.json"
	if _, err := os.Stat(swaggerSpec); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerSpec,
			Path:     "docs",
			Title:    "VelvetCart Admin API",
		}))
	} else {
		log.Warn().Str("path", swaggerSpec).Msg("swagger spec not found, docs UI disabled")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		OrderUC:     orderUC,
		BannerUC:    bannerUC,
		ShippingUC:  shippingUC,
		InventoryUC: inventoryUC,
		AdjustUC:    adjustUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info().Msg("application stopped")
}
