package dto

// SupplierRefDTO datos del proveedor sugerido para reordenar.
type SupplierRefDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlertDTO una posición de stock por debajo de su umbral.
// Supplier es nil cuando el producto no tiene proveedores vinculados: la
// ausencia es explícita, no un error.
type LowStockAlertDTO struct {
	ProductID         string          `json:"product_id"`
	ProductName       string          `json:"product_name"`
	SKU               string          `json:"sku"`
	WarehouseID       string          `json:"warehouse_id"`
	WarehouseName     string          `json:"warehouse_name"`
	CurrentStock      int64           `json:"current_stock"`
	Threshold         int64           `json:"threshold"`
	DaysUntilStockout int64           `json:"days_until_stockout"`
	Supplier          *SupplierRefDTO `json:"supplier"`
}

// LowStockAlertListResponse salida de GET /api/companies/:id/alerts/low-stock.
type LowStockAlertListResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
