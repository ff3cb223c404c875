package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registra una venta de un producto desde una bodega. El motor de alertas
// solo consulta recencia ("¿vendió en los últimos N días en bodegas de la
// empresa?"); la analítica completa de ventas queda fuera de este core.
type Sale struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int64
	UnitPrice   decimal.Decimal
	SoldAt      time.Time
}
