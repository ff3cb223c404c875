package repository

import (
	"context"

	"github.com/tu-usuario/stockflow-api/internal/domain/entity"
)

// SalesRepository define el puerto del historial de ventas. El motor de
// alertas solo necesita HasRecentSales; Create existe para alimentar el
// historial desde la API.
type SalesRepository interface {
	Create(sale *entity.Sale) error
	// HasRecentSales responde si el producto vendió en la ventana de los
	// últimos windowDays días en cualquier bodega de la empresa.
	HasRecentSales(ctx context.Context, productID, companyID string, windowDays int) (bool, error)
}
