package postgres

import (
	"context"

	"github.com/tu-usuario/stockflow-api/internal/domain/entity"
	"github.com/tu-usuario/stockflow-api/internal/domain/repository"
)

var _ repository.BundleRepository = (*BundleRepo)(nil)

// BundleRepo implementación del puerto BundleRepository sobre PostgreSQL.
// La tabla tiene PK (parent_product_id, child_product_id) y un CHECK que
// rechaza parent = child como segunda línea de defensa tras el caso de uso.
type BundleRepo struct {
	q Querier
}

// NewBundleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBundleRepository(q Querier) *BundleRepo {
	return &BundleRepo{q: q}
}

// Create persiste un componente del bundle.
func (r *BundleRepo) Create(bundle *entity.Bundle) error {
	query := `
		INSERT INTO bundles (parent_product_id, child_product_id, quantity)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		bundle.ParentProductID, bundle.ChildProductID, bundle.Quantity,
	)
	if err != nil {
		return mapStorageErr("insert bundle", err)
	}
	return nil
}

// ListByParent lista los componentes del bundle de un producto.
func (r *BundleRepo) ListByParent(parentProductID string) ([]*entity.Bundle, error) {
	query := `
		SELECT parent_product_id, child_product_id, quantity
		FROM bundles WHERE parent_product_id = $1
		ORDER BY child_product_id`
	rows, err := r.q.Query(context.Background(), query, parentProductID)
	if err != nil {
		return nil, mapStorageErr("list bundles", err)
	}
	defer rows.Close()
	var list []*entity.Bundle
	for rows.Next() {
		var b entity.Bundle
		if err := rows.Scan(&b.ParentProductID, &b.ChildProductID, &b.Quantity); err != nil {
			return nil, mapStorageErr("scan bundle", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
