package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo global. No está atado a ninguna
// bodega: el stock por bodega vive en Inventory. El SKU es único en toda la
// plataforma (constraint UNIQUE en products.sku como red de seguridad real).
//
// Price es opcional (nil = sin precio); cuando existe se guarda con escala
// fija de 2 decimales. LowStockThreshold es opcional: el valor efectivo lo
// resuelve inventory.EffectiveThreshold al momento de leer, nunca un fallback
// dinámico por atributo.
type Product struct {
	ID                string
	Name              string
	SKU               string
	Price             *decimal.Decimal
	LowStockThreshold *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
