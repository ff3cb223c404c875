// seed puebla la base con datos de demostración: una empresa con dos bodegas,
// productos con stock inicial, proveedores vinculados y ventas recientes para
// que el motor de alertas tenga material con qué trabajar.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración (env vars) que cmd/api.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockflow-api/internal/application/dto"
	"github.com/tu-usuario/stockflow-api/internal/application/inventory"
	"github.com/tu-usuario/stockflow-api/internal/application/usecase"
	"github.com/tu-usuario/stockflow-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/stockflow-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, companyRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, productRepo)
	salesUC := usecase.NewSalesUseCase(salesRepo, productRepo, warehouseRepo)
	ledger := inventory.NewStockLedgerUseCase(txRunner)
	registrar := inventory.NewRegisterProductUseCase(txRunner, productRepo, warehouseRepo, ledger)

	company, err := companyUC.Create(dto.CreateCompanyRequest{Name: "Comercial Andina"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "crear empresa: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("empresa %s (%s)\n", company.Name, company.ID)

	warehouses := make([]*dto.WarehouseResponse, 0, 2)
	for _, name := range []string{"Bodega Central", "Bodega Norte"} {
		w, err := warehouseUC.Create(dto.CreateWarehouseRequest{CompanyID: company.ID, Name: name})
		if err != nil {
			fmt.Fprintf(os.Stderr, "crear bodega %s: %v\n", name, err)
			os.Exit(1)
		}
		warehouses = append(warehouses, w)
		fmt.Printf("bodega %s (%s)\n", w.Name, w.ID)
	}

	type seedProduct struct {
		name  string
		sku   string
		price string
		qty   int64
	}
	products := []seedProduct{
		{"Café de origen 500g", "CAFE-500", "28.50", 120},
		{"Panela orgánica 1kg", "PANELA-1K", "9.90", 8},
		{"Miel de abejas 300ml", "MIEL-300", "15.00", 3},
		{"Chocolate de mesa 250g", "CHOC-250", "12.75", 45},
	}

	supplier, err := supplierUC.Create(dto.CreateSupplierRequest{
		Name:         "Distribuidora El Trigal",
		ContactEmail: "pedidos@eltrigal.example.com",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "crear proveedor: %v\n", err)
		os.Exit(1)
	}

	for i, p := range products {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			fmt.Fprintf(os.Stderr, "precio inválido %s: %v\n", p.price, err)
			os.Exit(1)
		}
		qty := p.qty
		out, err := registrar.RegisterProduct(ctx, inventory.RegisterProductInput{
			Name:            p.name,
			SKU:             p.sku,
			Price:           &price,
			WarehouseID:     warehouses[i%len(warehouses)].ID,
			InitialQuantity: &qty,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "registrar producto %s: %v\n", p.sku, err)
			os.Exit(1)
		}
		fmt.Printf("producto %s stock=%d\n", out.SKU, out.InitialQuantity)

		if err := supplierUC.LinkProduct(out.ProductID, supplier.ID); err != nil {
			fmt.Fprintf(os.Stderr, "vincular proveedor a %s: %v\n", p.sku, err)
			os.Exit(1)
		}

		// Ventas de la última semana para que la compuerta de recencia abra
		soldAt := time.Now().AddDate(0, 0, -3)
		if _, err := salesUC.Record(dto.RecordSaleRequest{
			ProductID:   out.ProductID,
			WarehouseID: out.WarehouseID,
			Quantity:    2,
			UnitPrice:   price,
			SoldAt:      &soldAt,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "registrar venta de %s: %v\n", p.sku, err)
			os.Exit(1)
		}
	}

	fmt.Println("seed completado")
}
