package usecase

import (
	"github.com/tu-usuario/stockflow-api/internal/application/dto"
	"github.com/tu-usuario/stockflow-api/internal/domain/repository"
)

// InventoryUseCase consultas de solo lectura sobre posiciones de stock y su
// historial. Las escrituras pasan por el ledger transaccional.
type InventoryUseCase struct {
	invRepo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(invRepo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{invRepo: invRepo}
}

// History devuelve el log append-only de cambios de una posición, del más
// reciente al más antiguo.
func (uc *InventoryUseCase) History(inventoryID string, limit, offset int) (*dto.InventoryHistoryListResponse, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()

	entries, err := uc.invRepo.ListHistory(inventoryID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryHistoryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.InventoryHistoryDTO{
			ID:          e.ID,
			InventoryID: e.InventoryID,
			Change:      e.Change,
			Timestamp:   e.CreatedAt,
		})
	}
	return &dto.InventoryHistoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
