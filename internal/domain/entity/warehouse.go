package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
// Pertenece exactamente a una empresa (CompanyID obligatorio).
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
