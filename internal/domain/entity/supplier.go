package entity

// Supplier representa un proveedor. No está ligado a una empresa:
// los productos de cualquier tenant pueden referenciarlo.
type Supplier struct {
	ID           int64
	Name         string
	ContactEmail *string
	ContactPhone *string
}
