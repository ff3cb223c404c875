package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockflow-api/internal/application/dto"
	"github.com/tu-usuario/stockflow-api/internal/application/usecase"
)

// BundleHandler maneja la composición de bundles (protegido).
type BundleHandler struct {
	uc *usecase.BundleUseCase
}

// NewBundleHandler construye el handler.
func NewBundleHandler(uc *usecase.BundleUseCase) *BundleHandler {
	return &BundleHandler{uc: uc}
}

// AddEntry godoc
// @Summary      Agregar componente al bundle de un producto
// @Tags         bundles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del producto padre"
// @Param        body  body  dto.CreateBundleEntryRequest  true  "Componente"
// @Success      201   {object}  dto.BundleEntryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/bundle [post]
func (h *BundleHandler) AddEntry(c *fiber.Ctx) error {
	parentID := c.Params("id")
	if parentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CreateBundleEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddEntry(parentID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByParent godoc
// @Summary      Componentes del bundle de un producto
// @Tags         bundles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto padre"
// @Success      200  {object}  dto.BundleListResponse
// @Router       /api/products/{id}/bundle [get]
func (h *BundleHandler) ListByParent(c *fiber.Ctx) error {
	parentID := c.Params("id")
	if parentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ListByParent(parentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
