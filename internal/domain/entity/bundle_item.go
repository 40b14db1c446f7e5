package entity

// BundleItem expresa que un producto bundle se compone de Quantity unidades
// de un producto componente. El par (bundle, componente) es único; Quantity > 0.
type BundleItem struct {
	ID                 int64
	BundleProductID    int64
	ComponentProductID int64
	Quantity           int64
}
