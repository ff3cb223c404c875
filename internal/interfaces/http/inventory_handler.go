package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockflow-api/internal/application/dto"
	appinventory "github.com/tu-usuario/stockflow-api/internal/application/inventory"
	"github.com/tu-usuario/stockflow-api/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP del ledger de stock (protegido).
type InventoryHandler struct {
	ledger *appinventory.StockLedgerUseCase
	uc     *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *appinventory.StockLedgerUseCase, uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, uc: uc}
}

// AddStock godoc
// @Summary      Crear o incrementar stock
// @Description  Aplica un delta no negativo a la posición (product_id, warehouse_id); la crea si no existe.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockRequest  true  "Delta de stock"
// @Success      200   {object}  dto.AddStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [post]
func (h *InventoryHandler) AddStock(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.ledger.CreateOrIncrementStock(c.Context(), in.ProductID, in.WarehouseID, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.AddStockResponse{InventoryID: res.InventoryID, NewQuantity: res.NewQuantity})
}

// History godoc
// @Summary      Historial de una posición de stock
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la posición de inventario"
// @Param        limit   query  int     false  "Límite"
// @Param        offset  query  int     false  "Offset"
// @Success      200  {object}  dto.InventoryHistoryListResponse
// @Router       /api/inventory/{id}/history [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.History(id, c.QueryInt("limit", dto.DefaultLimit), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
