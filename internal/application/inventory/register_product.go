package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockflow-api/internal/application/dto"
	"github.com/tu-usuario/stockflow-api/internal/domain"
	"github.com/tu-usuario/stockflow-api/internal/domain/entity"
	"github.com/tu-usuario/stockflow-api/internal/domain/repository"
)

// RegisterProductUseCase crea un producto del catálogo global y siembra su
// stock inicial en una bodega, ambas escrituras en una sola transacción: o se
// confirman juntas o ninguna queda visible.
type RegisterProductUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	ledger        *StockLedgerUseCase
}

// NewRegisterProductUseCase construye el caso de uso.
func NewRegisterProductUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	ledger *StockLedgerUseCase,
) *RegisterProductUseCase {
	return &RegisterProductUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		ledger:        ledger,
	}
}

// RegisterProductInput entrada ya tipada para registrar un producto.
// Price nil = sin precio; InitialQuantity nil = 0.
type RegisterProductInput struct {
	Name            string
	SKU             string
	Price           *decimal.Decimal
	WarehouseID     string
	InitialQuantity *int64
}

// RegisterProduct valida fail-fast, pre-chequea el SKU y ejecuta producto +
// siembra de stock dentro de TxRunner.Run. El pre-chequeo solo acorta el caso
// común a un 409 limpio; la garantía real contra carreras es el constraint
// UNIQUE de products.sku, que el adaptador traduce a domain.ErrDuplicate.
func (uc *RegisterProductUseCase) RegisterProduct(ctx context.Context, in RegisterProductInput) (*dto.RegisterProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	sku := strings.TrimSpace(in.SKU)
	if name == "" || sku == "" {
		return nil, fmt.Errorf("%w: name y sku son requeridos", domain.ErrInvalidInput)
	}
	if in.WarehouseID == "" {
		return nil, fmt.Errorf("%w: warehouse_id es requerido", domain.ErrInvalidInput)
	}

	var price *decimal.Decimal
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
		}
		rounded := in.Price.Round(2)
		price = &rounded
	}

	var qty int64
	if in.InitialQuantity != nil {
		if *in.InitialQuantity < 0 {
			return nil, fmt.Errorf("%w: la cantidad inicial debe ser un entero no negativo", domain.ErrInvalidInput)
		}
		qty = *in.InitialQuantity
	}

	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, fmt.Errorf("%w: bodega %s", domain.ErrNotFound, in.WarehouseID)
	}

	existing, _ := uc.productRepo.GetBySKU(sku)
	if existing != nil {
		return nil, fmt.Errorf("%w: sku '%s' ya existe", domain.ErrDuplicate, sku)
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		SKU:       sku,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Inserta el producto y siembra la posición de stock en la MISMA
	// transacción; cualquier fallo revierte ambas escrituras (TxRunner.Run).
	err = uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, invRepo repository.InventoryRepository) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		_, err := uc.ledger.ApplyDeltaInTx(invRepo, product.ID, in.WarehouseID, qty, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &dto.RegisterProductResponse{
		Message:         "producto creado",
		ProductID:       product.ID,
		SKU:             sku,
		WarehouseID:     in.WarehouseID,
		InitialQuantity: qty,
	}, nil
}
