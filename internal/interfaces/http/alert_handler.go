package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockflow-api/internal/application/dto"
	appinventory "github.com/tu-usuario/stockflow-api/internal/application/inventory"
)

// AlertHandler expone el motor de alertas de bajo stock.
type AlertHandler struct {
	uc *appinventory.LowStockAlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *appinventory.LowStockAlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// LowStock godoc
// @Summary      Alertas de bajo stock de una empresa
// @Description  Posiciones con stock bajo su umbral y ventas recientes, con proveedor sugerido y estimación de quiebre.
// @Tags         alerts
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID := c.Params("companyId")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "companyId es requerido"})
	}
	out, err := h.uc.ComputeLowStockAlerts(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
