package inventory

import (
	"context"

	"github.com/tu-usuario/stockflow-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el registro de
// productos y el Stock Ledger: o se confirma todo, o no se observa nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
	) error) error
}

// SalesHistory es el colaborador externo de historial de ventas que consume
// el motor de alertas. Lo implementa el adaptador de persistencia sobre la
// tabla de ventas, pero el caso de uso solo conoce esta interfaz.
type SalesHistory interface {
	HasRecentSales(ctx context.Context, productID, companyID string, windowDays int) (bool, error)
}
