package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest body para POST /api/sales: alimenta el historial que usa
// el motor de alertas para decidir recencia de ventas.
type RecordSaleRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	WarehouseID string          `json:"warehouse_id" validate:"required"`
	Quantity    int64           `json:"quantity" validate:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	SoldAt      *time.Time      `json:"sold_at,omitempty"` // nil = ahora
}

// RecordSaleResponse confirmación de la venta registrada.
type RecordSaleResponse struct {
	ID     string    `json:"id"`
	SoldAt time.Time `json:"sold_at"`
}
