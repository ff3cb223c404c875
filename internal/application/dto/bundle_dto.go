package dto

// CreateBundleEntryRequest body para POST /api/products/:id/bundle: agrega un
// componente (producto hijo) al bundle del producto padre.
type CreateBundleEntryRequest struct {
	ChildProductID string `json:"child_product_id" validate:"required"`
	Quantity       int64  `json:"quantity" validate:"required,min=1"`
}

// BundleEntryDTO un componente del bundle.
type BundleEntryDTO struct {
	ParentProductID string `json:"parent_product_id"`
	ChildProductID  string `json:"child_product_id"`
	Quantity        int64  `json:"quantity"`
}

// BundleListResponse componentes del bundle de un producto.
type BundleListResponse struct {
	Items []BundleEntryDTO `json:"items"`
}
