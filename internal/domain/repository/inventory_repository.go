package repository

import (
	"context"

	"github.com/tu-usuario/stockflow-api/internal/domain/entity"
)

// StockPosition es la fila cruda del join Inventory⋈Product⋈Warehouse que
// consume el motor de alertas. Threshold viene tal cual está configurado
// (nil = sin configurar); la política de default se aplica en el caso de uso.
type StockPosition struct {
	InventoryID   string
	ProductID     string
	ProductName   string
	SKU           string
	Threshold     *int64
	WarehouseID   string
	WarehouseName string
	Quantity      int64
}

// InventoryRepository define el puerto para las posiciones de stock y su
// historial. Usado dentro de transacciones para garantizar consistencia.
type InventoryRepository interface {
	Get(productID, warehouseID string) (*entity.Inventory, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Retorna (nil, nil) si la posición aún no existe.
	GetForUpdate(productID, warehouseID string) (*entity.Inventory, error)
	// UpsertDelta inserta la posición con quantity = delta o incrementa la
	// existente de forma atómica (ON CONFLICT ... quantity + EXCLUDED.quantity).
	// Devuelve la fila resultante con el ID canónico y la cantidad final.
	UpsertDelta(inventoryID, productID, warehouseID string, delta int64) (*entity.Inventory, error)
	// AppendHistory agrega exactamente una fila al log de cambios. Nunca se
	// actualiza ni se borra una entrada existente.
	AppendHistory(h *entity.InventoryHistory) error
	ListHistory(inventoryID string, limit, offset int) ([]*entity.InventoryHistory, error)

	// ListPositionsByCompany devuelve todas las posiciones de stock de las
	// bodegas de una empresa, ordenadas por (warehouse_id, product_id) para
	// que la salida del motor de alertas sea determinista.
	ListPositionsByCompany(ctx context.Context, companyID string) ([]StockPosition, error)
}
