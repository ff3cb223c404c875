package inventory_test

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/stockflow-api/internal/domain"
	"github.com/tu-usuario/stockflow-api/internal/domain/entity"
	"github.com/tu-usuario/stockflow-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos del motor de inventario. Simulan el
// comportamiento del adaptador PostgreSQL: ErrDuplicate ante SKU repetido,
// upsert con incremento atómico, y Rollback restaurando el estado previo.
// ──────────────────────────────────────────────────────────────────────────────

func invKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

type fakeStore struct {
	products    map[string]*entity.Product   // por ID
	warehouses  map[string]*entity.Warehouse // por ID
	inventories map[string]*entity.Inventory // por (productID|warehouseID)
	history     []*entity.InventoryHistory

	// Inyección de fallos.
	failCreateProduct error
	failUpsert        error
	// upsertSerialFails: cuántas llamadas a UpsertDelta fallan con
	// ErrSerialization antes de empezar a funcionar.
	upsertSerialFails int
	upsertCalls       int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:    make(map[string]*entity.Product),
		warehouses:  make(map[string]*entity.Warehouse),
		inventories: make(map[string]*entity.Inventory),
	}
}

func (s *fakeStore) addWarehouse(id, companyID, name string) {
	s.warehouses[id] = &entity.Warehouse{ID: id, CompanyID: companyID, Name: name}
}

// ── repository.ProductRepository ─────────────────────────────────────────────

func (s *fakeStore) Create(p *entity.Product) error {
	if s.failCreateProduct != nil {
		return s.failCreateProduct
	}
	for _, existing := range s.products {
		if existing.SKU == p.SKU {
			return fmt.Errorf("%w: sku", domain.ErrDuplicate)
		}
	}
	cp := *p
	s.products[p.ID] = &cp
	return nil
}

func (s *fakeStore) GetByID(id string) (*entity.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *fakeStore) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// ── repository.WarehouseRepository ───────────────────────────────────────────

func (s *fakeStore) CreateWarehouse(w *entity.Warehouse) error { s.warehouses[w.ID] = w; return nil }

type fakeWarehouseRepo struct{ store *fakeStore }

func (r fakeWarehouseRepo) Create(w *entity.Warehouse) error { return r.store.CreateWarehouse(w) }
func (r fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.store.warehouses[id]
	if !ok {
		return nil, nil
	}
	return w, nil
}
func (r fakeWarehouseRepo) ListByCompany(string, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}

// ── repository.InventoryRepository ───────────────────────────────────────────

func (s *fakeStore) Get(productID, warehouseID string) (*entity.Inventory, error) {
	inv, ok := s.inventories[invKey(productID, warehouseID)]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (s *fakeStore) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	return s.Get(productID, warehouseID)
}

func (s *fakeStore) UpsertDelta(inventoryID, productID, warehouseID string, delta int64) (*entity.Inventory, error) {
	s.upsertCalls++
	if s.upsertSerialFails > 0 {
		s.upsertSerialFails--
		return nil, fmt.Errorf("%w: 40001", domain.ErrSerialization)
	}
	if s.failUpsert != nil {
		return nil, s.failUpsert
	}
	key := invKey(productID, warehouseID)
	inv, ok := s.inventories[key]
	if !ok {
		inv = &entity.Inventory{
			ID:          inventoryID,
			ProductID:   productID,
			WarehouseID: warehouseID,
		}
		s.inventories[key] = inv
	}
	inv.Quantity += delta
	inv.UpdatedAt = time.Now()
	cp := *inv
	return &cp, nil
}

func (s *fakeStore) AppendHistory(h *entity.InventoryHistory) error {
	cp := *h
	s.history = append(s.history, &cp)
	return nil
}

func (s *fakeStore) ListHistory(inventoryID string, limit, offset int) ([]*entity.InventoryHistory, error) {
	var out []*entity.InventoryHistory
	for _, h := range s.history {
		if h.InventoryID == inventoryID {
			cp := *h
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeStore) ListPositionsByCompany(_ context.Context, companyID string) ([]repository.StockPosition, error) {
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

// ── TxRunner con Rollback simulado ───────────────────────────────────────────

// fakeTxRunner pasa el mismo store como repos y, si fn falla, restaura el
// snapshot previo: nada parcial queda visible, igual que un Rollback real.
type fakeTxRunner struct{ store *fakeStore }

func (r fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
) error) error {
	snapProducts := make(map[string]*entity.Product, len(r.store.products))
	for k, v := range r.store.products {
		cp := *v
		snapProducts[k] = &cp
	}
	snapInv := make(map[string]*entity.Inventory, len(r.store.inventories))
	for k, v := range r.store.inventories {
		cp := *v
		snapInv[k] = &cp
	}
	snapHist := make([]*entity.InventoryHistory, len(r.store.history))
	copy(snapHist, r.store.history)

	if err := fn(r.store, r.store); err != nil {
		r.store.products = snapProducts
		r.store.inventories = snapInv
		r.store.history = snapHist
		return err
	}
	return nil
}

// ── Fakes del motor de alertas ───────────────────────────────────────────────

type fakeSales struct {
	recent map[string]bool // productID → vendió en la ventana
	calls  int
}

func (f *fakeSales) HasRecentSales(_ context.Context, productID, _ string, _ int) (bool, error) {
	f.calls++
	return f.recent[productID], nil
}

type fakeSupplierRepo struct {
	byProduct map[string]*entity.Supplier
}

func (f fakeSupplierRepo) Create(*entity.Supplier) error               { return nil }
func (f fakeSupplierRepo) GetByID(string) (*entity.Supplier, error)    { return nil, nil }
func (f fakeSupplierRepo) List(int, int) ([]*entity.Supplier, error)   { return nil, nil }
func (f fakeSupplierRepo) LinkProduct(productID, supplierID string) error { return nil }
func (f fakeSupplierRepo) FirstByProduct(productID string) (*entity.Supplier, error) {
	return f.byProduct[productID], nil
}

// fakePositions sirve posiciones fijas en orden determinista.
type fakePositions struct {
	fakeStore // reutiliza el resto de métodos
	positions []repository.StockPosition
}

func (f *fakePositions) ListPositionsByCompany(_ context.Context, _ string) ([]repository.StockPosition, error) {
	return f.positions, nil
}
