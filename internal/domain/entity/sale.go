package entity

import "time"

// Sale representa una venta de Quantity unidades de un producto (hecho inmutable).
// SoldAt tiene granularidad de día; WarehouseID es opcional.
type Sale struct {
	ID          int64
	ProductID   int64
	WarehouseID *int64
	Quantity    int64
	SoldAt      time.Time
}
