package entity

import "time"

// Inventory representa la posición de stock de un producto en una bodega.
// Invariante central: existe a lo sumo una fila por (ProductID, WarehouseID);
// lo garantiza el constraint UNIQUE más el upsert atómico del Stock Ledger.
// Quantity nunca es negativa ni se modifica fuera del ledger.
type Inventory struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}

// InventoryHistory es el log append-only de cambios de stock: exactamente una
// fila por operación que modifica cantidad, con el delta firmado aplicado.
// Nunca se actualiza ni se borra.
type InventoryHistory struct {
	ID          string
	InventoryID string
	Change      int64
	CreatedAt   time.Time
}
