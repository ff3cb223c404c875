package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	appinventory "github.com/tu-usuario/stockflow-api/internal/application/inventory"
	"github.com/tu-usuario/stockflow-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ appinventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Los errores de begin/commit pasan por mapStorageErr para
// que un fallo de serialización en el commit también sea reintentable.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapStorageErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	invRepo := NewInventoryRepository(tx)

	if err := fn(productRepo, invRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return mapStorageErr("commit transaction", err)
	}
	return nil
}
