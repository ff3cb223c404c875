package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stockflow-api/internal/domain/entity"
	"github.com/tu-usuario/stockflow-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx). El constraint UNIQUE (product_id, warehouse_id) de
// la tabla inventories respalda el invariante de fila única.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Get obtiene la posición de stock de un producto en una bodega, o (nil, nil).
func (r *InventoryRepo) Get(productID, warehouseID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, updated_at
		FROM inventories WHERE product_id = $1 AND warehouse_id = $2`
	return r.scanOne(query, productID, warehouseID)
}

// GetForUpdate obtiene la posición y bloquea la fila (SELECT FOR UPDATE) para
// serializar a los escritores concurrentes. (nil, nil) si aún no existe.
func (r *InventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, updated_at
		FROM inventories WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	return r.scanOne(query, productID, warehouseID)
}

func (r *InventoryRepo) scanOne(query string, args ...any) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapStorageErr("get inventory", err)
	}
	return &inv, nil
}

// UpsertDelta inserta la posición con quantity = delta o incrementa la
// existente en una sola sentencia atómica. Dos creaciones concurrentes para el
// mismo (product_id, warehouse_id) convergen en una única fila: la segunda cae
// en el ON CONFLICT y suma sobre la fila ganadora. RETURNING entrega el ID
// canónico y la cantidad final.
func (r *InventoryRepo) UpsertDelta(inventoryID, productID, warehouseID string, delta int64) (*entity.Inventory, error) {
	query := `
		INSERT INTO inventories (id, product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = inventories.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING id, product_id, warehouse_id, quantity, updated_at`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, inventoryID, productID, warehouseID, delta).Scan(
		&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, mapStorageErr("upsert inventory", err)
	}
	return &inv, nil
}

// AppendHistory agrega una entrada al log de cambios. Solo INSERT: el
// historial nunca se actualiza ni se borra.
func (r *InventoryRepo) AppendHistory(h *entity.InventoryHistory) error {
	query := `
		INSERT INTO inventory_history (id, inventory_id, change, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, h.ID, h.InventoryID, h.Change, h.CreatedAt)
	if err != nil {
		return mapStorageErr("append inventory history", err)
	}
	return nil
}

// ListHistory lista el historial de una posición, del cambio más reciente al más antiguo.
func (r *InventoryRepo) ListHistory(inventoryID string, limit, offset int) ([]*entity.InventoryHistory, error) {
	query := `
		SELECT id, inventory_id, change, created_at
		FROM inventory_history WHERE inventory_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, inventoryID, limit, offset)
	if err != nil {
		return nil, mapStorageErr("list inventory history", err)
	}
	defer rows.Close()
	var list []*entity.InventoryHistory
	for rows.Next() {
		var h entity.InventoryHistory
		if err := rows.Scan(&h.ID, &h.InventoryID, &h.Change, &h.CreatedAt); err != nil {
			return nil, mapStorageErr("scan inventory history", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// ListPositionsByCompany devuelve las posiciones de stock de todas las bodegas
// de la empresa, con producto y bodega resueltos. El ORDER BY fijo hace la
// salida del motor de alertas determinista y reproducible en tests.
func (r *InventoryRepo) ListPositionsByCompany(ctx context.Context, companyID string) ([]repository.StockPosition, error) {
	query := `
		SELECT i.id, p.id, p.name, p.sku, p.low_stock_threshold, w.id, w.name, i.quantity
		FROM inventories i
		JOIN products p ON p.id = i.product_id
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE w.company_id = $1
		ORDER BY w.id, p.id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, mapStorageErr("list stock positions", err)
	}
	defer rows.Close()
	var list []repository.StockPosition
	for rows.Next() {
		var pos repository.StockPosition
		if err := rows.Scan(
			&pos.InventoryID, &pos.ProductID, &pos.ProductName, &pos.SKU, &pos.Threshold,
			&pos.WarehouseID, &pos.WarehouseName, &pos.Quantity,
		); err != nil {
			return nil, mapStorageErr("scan stock position", err)
		}
		list = append(list, pos)
	}
	return list, rows.Err()
}
