package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stockflow-api/internal/application/inventory"
	"github.com/tu-usuario/stockflow-api/internal/domain/entity"
	domaininv "github.com/tu-usuario/stockflow-api/internal/domain/inventory"
	"github.com/tu-usuario/stockflow-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// LowStockAlertUseCase: umbral estricto, compuerta de ventas recientes,
// proveedor opcional y determinismo.
// ──────────────────────────────────────────────────────────────────────────────

func posicion(productID, warehouseID string, qty int64, threshold *int64) repository.StockPosition {
	return repository.StockPosition{
		InventoryID:   "inv-" + productID + "-" + warehouseID,
		ProductID:     productID,
		ProductName:   "Producto " + productID,
		SKU:           "SKU-" + productID,
		Threshold:     threshold,
		WarehouseID:   warehouseID,
		WarehouseName: "Bodega " + warehouseID,
		Quantity:      qty,
	}
}

func newAlertUC(positions []repository.StockPosition, recent map[string]bool, suppliers map[string]*entity.Supplier) *inventory.LowStockAlertUseCase {
	return inventory.NewLowStockAlertUseCase(
		&fakePositions{positions: positions},
		fakeSupplierRepo{byProduct: suppliers},
		&fakeSales{recent: recent},
		nil, // heurística lineal por defecto
	)
}

func TestComputeLowStockAlerts_BajoUmbralConVentasRecientes(t *testing.T) {
	diez := int64(10)
	uc := newAlertUC(
		[]repository.StockPosition{posicion("p1", "w1", 5, &diez)},
		map[string]bool{"p1": true},
		map[string]*entity.Supplier{
			"p1": {ID: "sup-1", Name: "Aceros SAS", ContactEmail: "ventas@aceros.co"},
		},
	)

	out, err := uc.ComputeLowStockAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	require.Equal(t, 1, out.TotalAlerts)

	a := out.Alerts[0]
	assert.Equal(t, "p1", a.ProductID)
	assert.Equal(t, "Producto p1", a.ProductName)
	assert.Equal(t, "SKU-p1", a.SKU)
	assert.Equal(t, "w1", a.WarehouseID)
	assert.Equal(t, "Bodega w1", a.WarehouseName)
	assert.Equal(t, int64(5), a.CurrentStock)
	assert.Equal(t, int64(10), a.Threshold)
	assert.Equal(t, int64(5), a.DaysUntilStockout, "heurística lineal 1 unidad/día")
	require.NotNil(t, a.Supplier)
	assert.Equal(t, "sup-1", a.Supplier.ID)
	assert.Equal(t, "ventas@aceros.co", a.Supplier.ContactEmail)
}

// TestComputeLowStockAlerts_SinVentasRecientesSeOmite: sin ventas en la
// ventana la posición no alerta, incluso con stock cero. Regla de negocio
// deliberada, no un descuido.
func TestComputeLowStockAlerts_SinVentasRecientesSeOmite(t *testing.T) {
	uc := newAlertUC(
		[]repository.StockPosition{
			posicion("p1", "w1", 5, nil),
			posicion("p2", "w1", 0, nil),
		},
		map[string]bool{}, // nadie vendió
		nil,
	)

	out, err := uc.ComputeLowStockAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	assert.Zero(t, out.TotalAlerts)
	assert.Empty(t, out.Alerts)
}

// TestComputeLowStockAlerts_UmbralEstricto: stock == umbral NO alerta.
func TestComputeLowStockAlerts_UmbralEstricto(t *testing.T) {
	diez := int64(10)
	uc := newAlertUC(
		[]repository.StockPosition{
			posicion("p1", "w1", 10, &diez),
			posicion("p2", "w1", 9, &diez),
		},
		map[string]bool{"p1": true, "p2": true},
		nil,
	)

	out, err := uc.ComputeLowStockAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	require.Equal(t, 1, out.TotalAlerts)
	assert.Equal(t, "p2", out.Alerts[0].ProductID)
}

// TestComputeLowStockAlerts_UmbralPorDefecto: sin umbral configurado aplica 10.
func TestComputeLowStockAlerts_UmbralPorDefecto(t *testing.T) {
	uc := newAlertUC(
		[]repository.StockPosition{posicion("p1", "w1", 9, nil)},
		map[string]bool{"p1": true},
		nil,
	)

	out, err := uc.ComputeLowStockAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	require.Equal(t, 1, out.TotalAlerts)
	assert.Equal(t, int64(10), out.Alerts[0].Threshold)
}

// TestComputeLowStockAlerts_SinProveedorEsNulo: la ausencia de proveedor es
// explícita en la alerta, nunca un error.
func TestComputeLowStockAlerts_SinProveedorEsNulo(t *testing.T) {
	uc := newAlertUC(
		[]repository.StockPosition{posicion("p1", "w1", 2, nil)},
		map[string]bool{"p1": true},
		nil, // sin vínculos producto-proveedor
	)

	out, err := uc.ComputeLowStockAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	require.Equal(t, 1, out.TotalAlerts)
	assert.Nil(t, out.Alerts[0].Supplier)
}

// TestComputeLowStockAlerts_OrdenDeterminista: las alertas salen en el orden
// (warehouse_id, product_id) que entrega el repositorio.
func TestComputeLowStockAlerts_OrdenDeterminista(t *testing.T) {
	uc := newAlertUC(
		[]repository.StockPosition{
			posicion("p1", "w1", 1, nil),
			posicion("p2", "w1", 2, nil),
			posicion("p1", "w2", 3, nil),
		},
		map[string]bool{"p1": true, "p2": true},
		nil,
	)

	out, err := uc.ComputeLowStockAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	require.Equal(t, 3, out.TotalAlerts)
	assert.Equal(t, "w1", out.Alerts[0].WarehouseID)
	assert.Equal(t, "p1", out.Alerts[0].ProductID)
	assert.Equal(t, "p2", out.Alerts[1].ProductID)
	assert.Equal(t, "w2", out.Alerts[2].WarehouseID)
}

// TestComputeLowStockAlerts_Idempotente: dos llamadas sin escrituras
// intermedias devuelven exactamente lo mismo (camino puro de lectura).
func TestComputeLowStockAlerts_Idempotente(t *testing.T) {
	cinco := int64(5)
	uc := newAlertUC(
		[]repository.StockPosition{
			posicion("p1", "w1", 3, &cinco),
			posicion("p2", "w1", 20, nil),
		},
		map[string]bool{"p1": true, "p2": true},
		map[string]*entity.Supplier{"p1": {ID: "sup-1", Name: "Aceros SAS"}},
	)

	out1, err := uc.ComputeLowStockAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	out2, err := uc.ComputeLowStockAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
}

// TestComputeLowStockAlerts_EstimadorInyectable: el estimador de agotamiento
// es una estrategia reemplazable.
func TestComputeLowStockAlerts_EstimadorInyectable(t *testing.T) {
	uc := inventory.NewLowStockAlertUseCase(
		&fakePositions{positions: []repository.StockPosition{posicion("p1", "w1", 8, nil)}},
		fakeSupplierRepo{},
		&fakeSales{recent: map[string]bool{"p1": true}},
		domaininv.LinearDepletionEstimator{DailyRate: 4},
	)

	out, err := uc.ComputeLowStockAlerts(context.Background(), "co-1")
	require.NoError(t, err)
	require.Equal(t, 1, out.TotalAlerts)
	assert.Equal(t, int64(2), out.Alerts[0].DaysUntilStockout)
}
