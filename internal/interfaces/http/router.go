package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockflow-api/internal/application/auth"
	"github.com/tu-usuario/stockflow-api/internal/application/inventory"
	"github.com/tu-usuario/stockflow-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC       *usecase.CompanyUseCase
	WarehouseUC     *usecase.WarehouseUseCase
	ProductUC       *usecase.ProductUseCase
	InventoryUC     *usecase.InventoryUseCase
	SupplierUC      *usecase.SupplierUseCase
	BundleUC        *usecase.BundleUseCase
	SalesUC         *usecase.SalesUseCase
	RegisterProduct *inventory.RegisterProductUseCase
	StockLedger     *inventory.StockLedgerUseCase
	LowStockAlerts  *inventory.LowStockAlertUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	companies.Get("/:companyId/warehouses", warehouseHandler.ListByCompany)

	// Alertas de bajo stock (público: lo consumen dashboards y jobs de la empresa)
	alertHandler := NewAlertHandler(deps.LowStockAlerts)
	companies.Get("/:companyId/alerts/low-stock", alertHandler.LowStock)

	// Registro de producto con stock inicial (público: lo llama el onboarding)
	productHandler := NewProductHandler(deps.RegisterProduct, deps.ProductUC)
	api.Post("/products", productHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products: lecturas y composición (protegido)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	bundleHandler := NewBundleHandler(deps.BundleUC)
	products.Post("/:id/bundle", bundleHandler.AddEntry)
	products.Get("/:id/bundle", bundleHandler.ListByParent)

	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	products.Post("/:id/suppliers/:supplierID", supplierHandler.LinkProduct)

	// Warehouses (protegido; crear bodegas es solo para admin)
	warehouses := protected.Group("/warehouses")
	warehouses.Post("/", RequireRole("admin"), warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Inventory: ledger e historial (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockLedger, deps.InventoryUC)
	invGroup.Post("/stock", inventoryHandler.AddStock)
	invGroup.Get("/:id/history", inventoryHandler.History)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	// Sales (protegido)
	sales := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC)
	sales.Post("/", salesHandler.Record)
}
