package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. El SKU es único a nivel global
// (todas las empresas), no por empresa; el constraint de la tabla es el árbitro.
// IsBundle marca productos virtuales compuestos por otros (ver BundleItem).
type Product struct {
	ID         int64
	CompanyID  int64
	Name       string
	SKU        string
	Price      decimal.Decimal
	SupplierID *int64 // nil = sin proveedor asociado
	IsBundle   bool
	CreatedAt  time.Time
}
