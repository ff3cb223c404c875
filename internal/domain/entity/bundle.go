package entity

// Bundle modela un producto compuesto por cantidades de otros productos.
// Parent y Child deben ser productos distintos; el auto-bundle se rechaza en
// el caso de uso y en el CHECK de la tabla.
type Bundle struct {
	ParentProductID string
	ChildProductID  string
	Quantity        int64
}
