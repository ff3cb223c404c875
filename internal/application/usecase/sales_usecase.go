package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockflow-api/internal/application/dto"
	"github.com/tu-usuario/stockflow-api/internal/domain"
	"github.com/tu-usuario/stockflow-api/internal/domain/entity"
	"github.com/tu-usuario/stockflow-api/internal/domain/repository"
)

// SalesUseCase alimenta el historial de ventas que el motor de alertas usa
// para decidir recencia. No descuenta stock: eso es asunto del Stock Ledger y
// queda fuera del alcance de este core.
type SalesUseCase struct {
	repo          repository.SalesRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(
	repo repository.SalesRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *SalesUseCase {
	return &SalesUseCase{repo: repo, productRepo: productRepo, warehouseRepo: warehouseRepo}
}

// Record registra una venta. Producto y bodega deben existir.
func (uc *SalesUseCase) Record(in dto.RecordSaleRequest) (*dto.RecordSaleResponse, error) {
	if in.ProductID == "" || in.WarehouseID == "" {
		return nil, fmt.Errorf("%w: product_id y warehouse_id son requeridos", domain.ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad vendida debe ser positiva", domain.ErrInvalidInput)
	}
	if in.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: el precio unitario no puede ser negativo", domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, fmt.Errorf("%w: bodega %s", domain.ErrNotFound, in.WarehouseID)
	}

	soldAt := time.Now()
	if in.SoldAt != nil {
		soldAt = *in.SoldAt
	}
	sale := &entity.Sale{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		SoldAt:      soldAt,
	}
	if err := uc.repo.Create(sale); err != nil {
		return nil, err
	}
	return &dto.RecordSaleResponse{ID: sale.ID, SoldAt: sale.SoldAt}, nil
}
