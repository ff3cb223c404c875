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
	"github.com/tu-usuario/stockflow-api/internal/application/auth"
	"github.com/tu-usuario/stockflow-api/internal/application/inventory"
	"github.com/tu-usuario/stockflow-api/internal/application/usecase"
	domaininv "github.com/tu-usuario/stockflow-api/internal/domain/inventory"
	"github.com/tu-usuario/stockflow-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/stockflow-api/internal/interfaces/http"
	"github.com/tu-usuario/stockflow-api/pkg/config"
	"github.com/tu-usuario/stockflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	bundleRepo := postgres.NewBundleRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockLedgerUC := inventory.NewStockLedgerUseCase(txRunner)
	registerProductUC := inventory.NewRegisterProductUseCase(txRunner, productRepo, warehouseRepo, stockLedgerUC)
	lowStockAlertsUC := inventory.NewLowStockAlertUseCase(
		invRepo, supplierRepo, salesRepo,
		domaininv.LinearDepletionEstimator{DailyRate: cfg.Alerts.DailyRate},
	).WithSalesWindow(cfg.Alerts.SalesWindowDays)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, companyRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	inventoryUC := usecase.NewInventoryUseCase(invRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, productRepo)
	bundleUC := usecase.NewBundleUseCase(bundleRepo, productRepo)
	salesUC := usecase.NewSalesUseCase(salesRepo, productRepo, warehouseRepo)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:       companyUC,
		WarehouseUC:     warehouseUC,
		ProductUC:       productUC,
		InventoryUC:     inventoryUC,
		SupplierUC:      supplierUC,
		BundleUC:        bundleUC,
		SalesUC:         salesUC,
		RegisterProduct: registerProductUC,
		StockLedger:     stockLedgerUC,
		LowStockAlerts:  lowStockAlertsUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
