package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockflow-api/internal/application/dto"
	"github.com/tu-usuario/stockflow-api/internal/application/usecase"
	"github.com/tu-usuario/stockflow-api/internal/domain"
	"github.com/tu-usuario/stockflow-api/internal/domain/entity"
)

// ── fakes ────────────────────────────────────────────────────────────────────

type fakeBundleRepo struct {
	entries []*entity.Bundle
}

func (r *fakeBundleRepo) Create(b *entity.Bundle) error {
	cp := *b
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *fakeBundleRepo) ListByParent(parentID string) ([]*entity.Bundle, error) {
	var out []*entity.Bundle
	for _, b := range r.entries {
		if b.ParentProductID == parentID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(*entity.Product) error { return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }

func newBundleUC() (*usecase.BundleUseCase, *fakeBundleRepo) {
	repo := &fakeBundleRepo{}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"combo": {ID: "combo", Name: "Combo desayuno", SKU: "COMBO-1"},
		"cafe":  {ID: "cafe", Name: "Café 500g", SKU: "CAFE-500"},
		"pan":   {ID: "pan", Name: "Pan artesanal", SKU: "PAN-1"},
	}}
	return usecase.NewBundleUseCase(repo, products), repo
}

// ── tests ────────────────────────────────────────────────────────────────────

func TestBundleAddEntry_Exitoso(t *testing.T) {
	uc, repo := newBundleUC()

	out, err := uc.AddEntry("combo", dto.CreateBundleEntryRequest{ChildProductID: "cafe", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, "combo", out.ParentProductID)
	assert.Equal(t, "cafe", out.ChildProductID)
	assert.Equal(t, int64(2), out.Quantity)
	assert.Len(t, repo.entries, 1)
}

func TestBundleAddEntry_AutoReferenciaRechazada(t *testing.T) {
	uc, repo := newBundleUC()

	_, err := uc.AddEntry("combo", dto.CreateBundleEntryRequest{ChildProductID: "combo", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un producto no puede ser componente de su propio bundle")
	assert.Empty(t, repo.entries)
}

func TestBundleAddEntry_CantidadNoPositiva(t *testing.T) {
	uc, _ := newBundleUC()

	for _, qty := range []int64{0, -3} {
		_, err := uc.AddEntry("combo", dto.CreateBundleEntryRequest{ChildProductID: "cafe", Quantity: qty})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestBundleAddEntry_ProductoInexistente(t *testing.T) {
	uc, _ := newBundleUC()

	_, err := uc.AddEntry("no-existe", dto.CreateBundleEntryRequest{ChildProductID: "cafe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.AddEntry("combo", dto.CreateBundleEntryRequest{ChildProductID: "no-existe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBundleListByParent(t *testing.T) {
	uc, _ := newBundleUC()

	_, err := uc.AddEntry("combo", dto.CreateBundleEntryRequest{ChildProductID: "cafe", Quantity: 2})
	require.NoError(t, err)
	_, err = uc.AddEntry("combo", dto.CreateBundleEntryRequest{ChildProductID: "pan", Quantity: 1})
	require.NoError(t, err)

	out, err := uc.ListByParent("combo")
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)

	vacio, err := uc.ListByParent("cafe")
	require.NoError(t, err)
	assert.Empty(t, vacio.Items)
}
