package repository

import "github.com/tu-usuario/stockflow-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Create retorna domain.ErrDuplicate si el SKU ya existe (constraint UNIQUE):
// esa es la garantía autoritativa; GetBySKU solo sirve de pre-chequeo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
}
