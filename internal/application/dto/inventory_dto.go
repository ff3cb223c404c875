package dto

import "time"

// AddStockRequest body para POST /api/inventory/stock: crea o incrementa la
// posición (product_id, warehouse_id) vía el Stock Ledger.
type AddStockRequest struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int64  `json:"quantity"`
}

// AddStockResponse resultado del ledger tras aplicar el delta.
type AddStockResponse struct {
	InventoryID string `json:"inventory_id"`
	NewQuantity int64  `json:"new_quantity"`
}

// InventoryHistoryDTO una entrada del log append-only de cambios de stock.
type InventoryHistoryDTO struct {
	ID          string    `json:"id"`
	InventoryID string    `json:"inventory_id"`
	Change      int64     `json:"change"`
	Timestamp   time.Time `json:"timestamp"`
}

// InventoryHistoryListResponse historial de una posición de stock.
type InventoryHistoryListResponse struct {
	Items []InventoryHistoryDTO `json:"items"`
	Page  PageResponse          `json:"page"`
}
