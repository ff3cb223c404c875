package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockflow-api/internal/application/dto"
	appinventory "github.com/tu-usuario/stockflow-api/internal/application/inventory"
	"github.com/tu-usuario/stockflow-api/internal/application/usecase"
	"github.com/tu-usuario/stockflow-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/stockflow-api/internal/interfaces/http"
)

// buildProductApp monta POST /api/products sobre fakes en memoria.
func buildProductApp(store *memStore) *fiber.App {
	ledger := appinventory.NewStockLedgerUseCase(memTxRunner{store})
	registrar := appinventory.NewRegisterProductUseCase(
		memTxRunner{store}, store, memWarehouseRepo{store}, ledger,
	)
	handler := apphttp.NewProductHandler(registrar, usecase.NewProductUseCase(store))

	app := fiber.New()
	app.Post("/api/products", handler.Register)
	app.Get("/api/products/:id", handler.GetByID)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestPostProducts_CreaProductoConStockInicial(t *testing.T) {
	store := newMemStore()
	store.warehouses["w1"] = &entity.Warehouse{ID: "w1", CompanyID: "c1", Name: "Central"}
	app := buildProductApp(store)

	resp := postJSON(t, app, "/api/products", map[string]any{
		"name":             "Café de origen",
		"sku":              "CAFE-500",
		"price":            "28.50",
		"warehouse_id":     "w1",
		"initial_quantity": 25,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.RegisterProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "CAFE-500", out.SKU)
	assert.Equal(t, "w1", out.WarehouseID)
	assert.Equal(t, int64(25), out.InitialQuantity)
	assert.NotEmpty(t, out.ProductID)

	inv, err := store.Get(out.ProductID, "w1")
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, int64(25), inv.Quantity)
	assert.Len(t, store.history, 1)
}

func TestPostProducts_ValidacionRetorna400(t *testing.T) {
	store := newMemStore()
	app := buildProductApp(store)

	resp := postJSON(t, app, "/api/products", map[string]any{
		"name": "", "sku": "X-1", "warehouse_id": "w1",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errBody dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "VALIDATION", errBody.Code)
}

func TestPostProducts_BodegaInexistenteRetorna404(t *testing.T) {
	store := newMemStore()
	app := buildProductApp(store)

	resp := postJSON(t, app, "/api/products", map[string]any{
		"name": "Miel", "sku": "MIEL-300", "warehouse_id": "no-existe",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPostProducts_SKUDuplicadoRetorna409(t *testing.T) {
	store := newMemStore()
	store.warehouses["w1"] = &entity.Warehouse{ID: "w1", CompanyID: "c1", Name: "Central"}
	app := buildProductApp(store)

	first := postJSON(t, app, "/api/products", map[string]any{
		"name": "Panela", "sku": "PANELA-1K", "warehouse_id": "w1",
	})
	first.Body.Close()
	require.Equal(t, http.StatusCreated, first.StatusCode)

	resp := postJSON(t, app, "/api/products", map[string]any{
		"name": "Panela bis", "sku": "PANELA-1K", "warehouse_id": "w1",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var errBody dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "DUPLICATE", errBody.Code)
}

func TestPostProducts_CuerpoInvalidoRetorna400(t *testing.T) {
	store := newMemStore()
	app := buildProductApp(store)

	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetProduct_NoExisteRetorna404(t *testing.T) {
	store := newMemStore()
	app := buildProductApp(store)

	req := httptest.NewRequest(http.MethodGet, "/api/products/nope", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
