package repository

import "github.com/tu-usuario/stockflow-api/internal/domain/entity"

// BundleRepository define el puerto de persistencia para Bundle.
type BundleRepository interface {
	Create(bundle *entity.Bundle) error
	ListByParent(parentProductID string) ([]*entity.Bundle, error)
}
