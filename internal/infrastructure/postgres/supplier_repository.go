package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stockflow-api/internal/domain/entity"
	"github.com/tu-usuario/stockflow-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, contact_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.ContactEmail, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		return mapStorageErr("insert supplier", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT id, name, contact_email, created_at, updated_at FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.ContactEmail, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapStorageErr("get supplier", err)
	}
	return &s, nil
}

// List lista proveedores con paginación.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT id, name, contact_email, created_at, updated_at
		FROM suppliers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, mapStorageErr("list suppliers", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactEmail, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, mapStorageErr("scan supplier", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// LinkProduct crea el vínculo producto-proveedor; ON CONFLICT DO NOTHING lo
// hace idempotente.
func (r *SupplierRepo) LinkProduct(productID, supplierID string) error {
	query := `
		INSERT INTO product_suppliers (product_id, supplier_id)
		VALUES ($1, $2)
		ON CONFLICT (product_id, supplier_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, productID, supplierID)
	if err != nil {
		return mapStorageErr("link product supplier", err)
	}
	return nil
}

// FirstByProduct devuelve el primer proveedor vinculado al producto en orden
// estable, o (nil, nil) si no hay vínculos.
func (r *SupplierRepo) FirstByProduct(productID string) (*entity.Supplier, error) {
	query := `
		SELECT s.id, s.name, s.contact_email, s.created_at, s.updated_at
		FROM product_suppliers ps
		JOIN suppliers s ON s.id = ps.supplier_id
		WHERE ps.product_id = $1
		ORDER BY s.id
		LIMIT 1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&s.ID, &s.Name, &s.ContactEmail, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapStorageErr("first supplier by product", err)
	}
	return &s, nil
}
