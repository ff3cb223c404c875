package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterProductRequest body para POST /api/products: crea el producto y
// siembra su stock inicial en la bodega indicada, todo en una transacción.
type RegisterProductRequest struct {
	Name            string           `json:"name" validate:"required,min=1,max=200"`
	SKU             string           `json:"sku" validate:"required,min=1,max=100"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	WarehouseID     string           `json:"warehouse_id" validate:"required"`
	InitialQuantity *int64           `json:"initial_quantity,omitempty"` // nil = 0
}

// RegisterProductResponse salida de POST /api/products (201).
type RegisterProductResponse struct {
	Message         string `json:"message"`
	ProductID       string `json:"product_id"`
	SKU             string `json:"sku"`
	WarehouseID     string `json:"warehouse_id"`
	InitialQuantity int64  `json:"initial_quantity"`
}

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	SKU               string           `json:"sku"`
	Price             *decimal.Decimal `json:"price"`
	LowStockThreshold *int64           `json:"low_stock_threshold"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
