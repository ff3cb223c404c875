package inventory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockflow-api/internal/domain"
	"github.com/tu-usuario/stockflow-api/internal/domain/entity"
	"github.com/tu-usuario/stockflow-api/internal/domain/repository"
)

// Política de reintentos ante conflictos de serialización/deadlock.
const (
	defaultMaxRetries = 3
	defaultBackoff    = 50 * time.Millisecond
)

// StockLedgerUseCase es el dueño del invariante "a lo sumo una fila de
// Inventory por (producto, bodega)". Toda mutación de cantidades pasa por
// aquí: bloquea la fila (SELECT FOR UPDATE), aplica el delta con un upsert
// atómico y agrega exactamente una entrada al historial, todo en una
// transacción con Commit/Rollback.
type StockLedgerUseCase struct {
	txRunner   TxRunner
	maxRetries int
	backoff    time.Duration
}

// NewStockLedgerUseCase construye el ledger con la política de reintentos por defecto.
func NewStockLedgerUseCase(txRunner TxRunner) *StockLedgerUseCase {
	return &StockLedgerUseCase{
		txRunner:   txRunner,
		maxRetries: defaultMaxRetries,
		backoff:    defaultBackoff,
	}
}

// StockChangeResult resultado de aplicar un delta sobre una posición.
type StockChangeResult struct {
	InventoryID string
	NewQuantity int64
}

// CreateOrIncrementStock crea la posición (productID, warehouseID) con
// quantity = delta, o incrementa la existente. Este core solo acepta deltas no
// negativos; decrementar stock queda fuera de su alcance.
//
// Si la transacción falla por serialización o deadlock se reintenta completa
// hasta maxRetries veces con backoff lineal; agotados los reintentos se
// reporta domain.ErrStorage.
func (uc *StockLedgerUseCase) CreateOrIncrementStock(ctx context.Context, productID, warehouseID string, delta int64) (*StockChangeResult, error) {
	if productID == "" || warehouseID == "" {
		return nil, fmt.Errorf("%w: product_id y warehouse_id son requeridos", domain.ErrInvalidInput)
	}
	if delta < 0 {
		return nil, fmt.Errorf("%w: el delta no puede ser negativo", domain.ErrInvalidInput)
	}

	var result *StockChangeResult
	var err error
	for attempt := 0; attempt <= uc.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * uc.backoff):
			}
		}
		err = uc.txRunner.Run(ctx, func(_ repository.ProductRepository, invRepo repository.InventoryRepository) error {
			res, innerErr := uc.ApplyDeltaInTx(invRepo, productID, warehouseID, delta, time.Now())
			if innerErr != nil {
				return innerErr
			}
			result = res
			return nil
		})
		if err == nil || !errors.Is(err, domain.ErrSerialization) {
			break
		}
	}
	if err != nil {
		if errors.Is(err, domain.ErrSerialization) {
			return nil, fmt.Errorf("%w: reintentos agotados aplicando delta de stock", domain.ErrStorage)
		}
		return nil, err
	}
	return result, nil
}

// ApplyDeltaInTx aplica el delta usando el repositorio proporcionado (misma
// transacción del caller). Lo usa CreateOrIncrementStock y también el registro
// de productos para sembrar stock inicial dentro de su propia transacción.
//
// Secuencia libre de carreras: GetForUpdate serializa a los callers cuando la
// fila ya existe; cuando no existe, UpsertDelta (INSERT ... ON CONFLICT DO
// UPDATE quantity = quantity + delta) garantiza que dos creaciones
// concurrentes converjan en una sola fila.
func (uc *StockLedgerUseCase) ApplyDeltaInTx(invRepo repository.InventoryRepository, productID, warehouseID string, delta int64, now time.Time) (*StockChangeResult, error) {
	current, err := invRepo.GetForUpdate(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	if current != nil && current.Quantity > math.MaxInt64-delta {
		return nil, fmt.Errorf("%w: desbordamiento de cantidad", domain.ErrInvalidInput)
	}

	inv, err := invRepo.UpsertDelta(uuid.New().String(), productID, warehouseID, delta)
	if err != nil {
		return nil, err
	}

	// Exactamente una entrada de historial por operación exitosa.
	hist := &entity.InventoryHistory{
		ID:          uuid.New().String(),
		InventoryID: inv.ID,
		Change:      delta,
		CreatedAt:   now,
	}
	if err := invRepo.AppendHistory(hist); err != nil {
		return nil, err
	}

	return &StockChangeResult{InventoryID: inv.ID, NewQuantity: inv.Quantity}, nil
}
