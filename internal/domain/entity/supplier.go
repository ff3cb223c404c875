package entity

import "time"

// Supplier representa un proveedor al que se le puede reordenar mercancía.
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductSupplier vincula productos con proveedores (muchos a muchos, sin payload).
type ProductSupplier struct {
	ProductID  string
	SupplierID string
}
