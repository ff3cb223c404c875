package usecase

import (
	"fmt"

	"github.com/tu-usuario/stockflow-api/internal/application/dto"
	"github.com/tu-usuario/stockflow-api/internal/domain"
	"github.com/tu-usuario/stockflow-api/internal/domain/entity"
	"github.com/tu-usuario/stockflow-api/internal/domain/repository"
)

// BundleUseCase administra la composición de productos (bundles).
type BundleUseCase struct {
	repo        repository.BundleRepository
	productRepo repository.ProductRepository
}

// NewBundleUseCase construye el caso de uso.
func NewBundleUseCase(repo repository.BundleRepository, productRepo repository.ProductRepository) *BundleUseCase {
	return &BundleUseCase{repo: repo, productRepo: productRepo}
}

// AddEntry agrega un componente al bundle de un producto. El auto-bundle
// (padre == hijo) se rechaza aquí y también en el CHECK del schema.
func (uc *BundleUseCase) AddEntry(parentProductID string, in dto.CreateBundleEntryRequest) (*dto.BundleEntryDTO, error) {
	if parentProductID == "" || in.ChildProductID == "" {
		return nil, fmt.Errorf("%w: parent y child son requeridos", domain.ErrInvalidInput)
	}
	if parentProductID == in.ChildProductID {
		return nil, fmt.Errorf("%w: un producto no puede ser componente de sí mismo", domain.ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad del componente debe ser positiva", domain.ErrInvalidInput)
	}

	parent, err := uc.productRepo.GetByID(parentProductID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, parentProductID)
	}
	child, err := uc.productRepo.GetByID(in.ChildProductID)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ChildProductID)
	}

	bundle := &entity.Bundle{
		ParentProductID: parentProductID,
		ChildProductID:  in.ChildProductID,
		Quantity:        in.Quantity,
	}
	if err := uc.repo.Create(bundle); err != nil {
		return nil, err
	}
	return &dto.BundleEntryDTO{
		ParentProductID: bundle.ParentProductID,
		ChildProductID:  bundle.ChildProductID,
		Quantity:        bundle.Quantity,
	}, nil
}

// ListByParent devuelve los componentes del bundle de un producto.
func (uc *BundleUseCase) ListByParent(parentProductID string) (*dto.BundleListResponse, error) {
	list, err := uc.repo.ListByParent(parentProductID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BundleEntryDTO, 0, len(list))
	for _, b := range list {
		items = append(items, dto.BundleEntryDTO{
			ParentProductID: b.ParentProductID,
			ChildProductID:  b.ChildProductID,
			Quantity:        b.Quantity,
		})
	}
	return &dto.BundleListResponse{Items: items}, nil
}
