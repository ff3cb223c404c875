package postgres

import (
	"context"

	appinventory "github.com/tu-usuario/stockflow-api/internal/application/inventory"
	"github.com/tu-usuario/stockflow-api/internal/domain/entity"
	"github.com/tu-usuario/stockflow-api/internal/domain/repository"
)

var (
	_ repository.SalesRepository = (*SalesRepo)(nil)
	_ appinventory.SalesHistory  = (*SalesRepo)(nil)
)

// SalesRepo implementación del historial de ventas sobre PostgreSQL. Es el
// colaborador de recencia que consume el motor de alertas.
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// Create persiste una venta.
func (r *SalesRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, warehouse_id, quantity, unit_price, sold_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, sale.WarehouseID, sale.Quantity, sale.UnitPrice, sale.SoldAt,
	)
	if err != nil {
		return mapStorageErr("insert sale", err)
	}
	return nil
}

// HasRecentSales responde si el producto vendió dentro de la ventana, en
// cualquier bodega de la empresa. EXISTS corta en la primera fila.
func (r *SalesRepo) HasRecentSales(ctx context.Context, productID, companyID string, windowDays int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM sales s
			JOIN warehouses w ON w.id = s.warehouse_id
			WHERE s.product_id = $1
			  AND w.company_id = $2
			  AND s.sold_at >= now() - make_interval(days => $3)
		)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, productID, companyID, windowDays).Scan(&exists); err != nil {
		return false, mapStorageErr("has recent sales", err)
	}
	return exists, nil
}
