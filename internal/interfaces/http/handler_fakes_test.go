package http_test

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/stockflow-api/internal/domain"
	"github.com/tu-usuario/stockflow-api/internal/domain/entity"
	"github.com/tu-usuario/stockflow-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los tests de handlers: el mismo contrato que el
// adaptador PostgreSQL (ErrDuplicate ante SKU repetido, upsert incremental,
// (nil, nil) ante ausencia), sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products    map[string]*entity.Product
	warehouses  map[string]*entity.Warehouse
	inventories map[string]*entity.Inventory // por productID|warehouseID
	history     []*entity.InventoryHistory
	suppliers   map[string][]*entity.Supplier // por productID
	recentSales map[string]bool               // por productID
}

func newMemStore() *memStore {
	return &memStore{
		products:    make(map[string]*entity.Product),
		warehouses:  make(map[string]*entity.Warehouse),
		inventories: make(map[string]*entity.Inventory),
		suppliers:   make(map[string][]*entity.Supplier),
		recentSales: make(map[string]bool),
	}
}

func memKey(productID, warehouseID string) string { return productID + "|" + warehouseID }

// ── repository.ProductRepository ─────────────────────────────────────────────

func (s *memStore) Create(p *entity.Product) error {
	for _, existing := range s.products {
		if existing.SKU == p.SKU {
			return fmt.Errorf("%w: sku", domain.ErrDuplicate)
		}
	}
	cp := *p
	s.products[p.ID] = &cp
	return nil
}

func (s *memStore) GetByID(id string) (*entity.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *memStore) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memStore) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// ── repository.InventoryRepository ───────────────────────────────────────────

func (s *memStore) Get(productID, warehouseID string) (*entity.Inventory, error) {
	inv, ok := s.inventories[memKey(productID, warehouseID)]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (s *memStore) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	return s.Get(productID, warehouseID)
}

func (s *memStore) UpsertDelta(inventoryID, productID, warehouseID string, delta int64) (*entity.Inventory, error) {
	key := memKey(productID, warehouseID)
	inv, ok := s.inventories[key]
	if !ok {
		inv = &entity.Inventory{ID: inventoryID, ProductID: productID, WarehouseID: warehouseID}
		s.inventories[key] = inv
	}
	inv.Quantity += delta
	inv.UpdatedAt = time.Now()
	cp := *inv
	return &cp, nil
}

func (s *memStore) AppendHistory(h *entity.InventoryHistory) error {
	cp := *h
	s.history = append(s.history, &cp)
	return nil
}

func (s *memStore) ListHistory(inventoryID string, limit, offset int) ([]*entity.InventoryHistory, error) {
	var out []*entity.InventoryHistory
	for _, h := range s.history {
		if h.InventoryID == inventoryID {
			cp := *h
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memStore) ListPositionsByCompany(_ context.Context, companyID string) ([]repository.StockPosition, error) {
	var out []repository.StockPosition
	for _, inv := range s.inventories {
		wh := s.warehouses[inv.WarehouseID]
		if wh == nil || wh.CompanyID != companyID {
			continue
		}
		p := s.products[inv.ProductID]
		if p == nil {
			continue
		}
		out = append(out, repository.StockPosition{
			InventoryID:   inv.ID,
			ProductID:     p.ID,
			ProductName:   p.Name,
			SKU:           p.SKU,
			Threshold:     p.LowStockThreshold,
			WarehouseID:   wh.ID,
			WarehouseName: wh.Name,
			Quantity:      inv.Quantity,
		})
	}
	return out, nil
}

// ── repository.WarehouseRepository ───────────────────────────────────────────

type memWarehouseRepo struct{ store *memStore }

func (r memWarehouseRepo) Create(w *entity.Warehouse) error {
	cp := *w
	r.store.warehouses[w.ID] = &cp
	return nil
}

func (r memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.store.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r memWarehouseRepo) ListByCompany(string, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}

// ── repository.SupplierRepository ────────────────────────────────────────────

type memSupplierRepo struct{ store *memStore }

func (r memSupplierRepo) Create(*entity.Supplier) error { return nil }

func (r memSupplierRepo) GetByID(string) (*entity.Supplier, error) { return nil, nil }

func (r memSupplierRepo) List(int, int) ([]*entity.Supplier, error) { return nil, nil }

func (r memSupplierRepo) LinkProduct(productID, supplierID string) error { return nil }

func (r memSupplierRepo) FirstByProduct(productID string) (*entity.Supplier, error) {
	list := r.store.suppliers[productID]
	if len(list) == 0 {
		return nil, nil
	}
	cp := *list[0]
	return &cp, nil
}

// ── inventory.SalesHistory ───────────────────────────────────────────────────

type memSales struct{ store *memStore }

func (s memSales) HasRecentSales(_ context.Context, productID, _ string, _ int) (bool, error) {
	return s.store.recentSales[productID], nil
}

// ── inventory.TxRunner (passthrough, sin rollback: los tests de handlers no
//    ejercitan fallos a mitad de transacción) ────────────────────────────────

type memTxRunner struct{ store *memStore }

func (r memTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
) error) error {
	return fn(r.store, r.store)
}
