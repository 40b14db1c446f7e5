package entity

import "time"

// Inventory representa el stock actual de un producto en una bodega.
// Hay exactamente una fila por par (producto, bodega); quantity y min_stock nunca son negativos.
type Inventory struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	Quantity    int64
	MinStock    int64
	UpdatedAt   time.Time
}
