package repository

import "github.com/tu-usuario/stockflow-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier y el
// vínculo producto-proveedor.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
	// LinkProduct crea el vínculo (product_id, supplier_id); idempotente.
	LinkProduct(productID, supplierID string) error
	// FirstByProduct devuelve el primer proveedor vinculado al producto, o
	// (nil, nil) si no hay ninguno. La ausencia no es un error.
	FirstByProduct(productID string) (*entity.Supplier, error)
}
