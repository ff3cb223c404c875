package inventory

import (
	"context"

	"github.com/tu-usuario/stockflow-api/internal/application/dto"
	domaininv "github.com/tu-usuario/stockflow-api/internal/domain/inventory"
	"github.com/tu-usuario/stockflow-api/internal/domain/repository"
)

// RecentSalesWindowDays ventana de recencia de ventas que consulta el motor
// de alertas: solo alertan posiciones cuyo producto vendió en los últimos 30
// días en alguna bodega de la empresa.
const RecentSalesWindowDays = 30

// LowStockAlertUseCase calcula las alertas de stock bajo de una empresa.
// Camino de solo lectura: no toma locks ni muta ninguna entidad, por lo que
// dos llamadas sin escrituras intermedias producen el mismo resultado.
type LowStockAlertUseCase struct {
	invRepo      repository.InventoryRepository
	supplierRepo repository.SupplierRepository
	sales        SalesHistory
	estimator    domaininv.StockoutEstimator
	windowDays   int
}

// WithSalesWindow ajusta la ventana de recencia (días). Valores <= 0 se ignoran.
func (uc *LowStockAlertUseCase) WithSalesWindow(days int) *LowStockAlertUseCase {
	if days > 0 {
		uc.windowDays = days
	}
	return uc
}

// NewLowStockAlertUseCase construye el motor de alertas. estimator nil usa la
// heurística lineal por defecto (1 unidad/día).
func NewLowStockAlertUseCase(
	invRepo repository.InventoryRepository,
	supplierRepo repository.SupplierRepository,
	sales SalesHistory,
	estimator domaininv.StockoutEstimator,
) *LowStockAlertUseCase {
	if estimator == nil {
		estimator = domaininv.LinearDepletionEstimator{DailyRate: 1}
	}
	return &LowStockAlertUseCase{
		invRepo:      invRepo,
		supplierRepo: supplierRepo,
		sales:        sales,
		estimator:    estimator,
		windowDays:   RecentSalesWindowDays,
	}
}

// ComputeLowStockAlerts recorre las posiciones de stock de la empresa (orden
// determinista: warehouse_id, product_id) y por cada una aplica en orden:
// umbral efectivo, compuerta de ventas recientes, comparación estricta
// stock < umbral, estimación de días hasta agotar y primer proveedor vinculado.
//
// Regla de negocio deliberada: sin ventas recientes la posición se omite por
// completo, incluso con stock cero.
func (uc *LowStockAlertUseCase) ComputeLowStockAlerts(ctx context.Context, companyID string) (*dto.LowStockAlertListResponse, error) {
	positions, err := uc.invRepo.ListPositionsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.LowStockAlertDTO, 0, len(positions))
	for _, pos := range positions {
		threshold := domaininv.EffectiveThreshold(pos.Threshold)

		recent, err := uc.sales.HasRecentSales(ctx, pos.ProductID, companyID, uc.windowDays)
		if err != nil {
			return nil, err
		}
		if !recent {
			continue
		}

		// Comparación estricta: stock == umbral no alerta.
		if pos.Quantity >= threshold {
			continue
		}

		supplier, err := uc.supplierRepo.FirstByProduct(pos.ProductID)
		if err != nil {
			return nil, err
		}
		var supplierRef *dto.SupplierRefDTO
		if supplier != nil {
			supplierRef = &dto.SupplierRefDTO{
				ID:           supplier.ID,
				Name:         supplier.Name,
				ContactEmail: supplier.ContactEmail,
			}
		}

		alerts = append(alerts, dto.LowStockAlertDTO{
			ProductID:         pos.ProductID,
			ProductName:       pos.ProductName,
			SKU:               pos.SKU,
			WarehouseID:       pos.WarehouseID,
			WarehouseName:     pos.WarehouseName,
			CurrentStock:      pos.Quantity,
			Threshold:         threshold,
			DaysUntilStockout: uc.estimator.DaysUntilStockout(pos.Quantity),
			Supplier:          supplierRef,
		})
	}

	return &dto.LowStockAlertListResponse{Alerts: alerts, TotalAlerts: len(alerts)}, nil
}
