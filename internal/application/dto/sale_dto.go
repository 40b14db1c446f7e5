package dto

import "time"

// RecordSaleRequest entrada para registrar una venta.
// SoldAt en formato YYYY-MM-DD; vacío = hoy.
type RecordSaleRequest struct {
	ProductID   int64  `json:"product_id"`
	WarehouseID *int64 `json:"warehouse_id"`
	Quantity    int64  `json:"quantity"`
	SoldAt      string `json:"sold_at"`
}

// SaleResponse salida de una venta registrada.
type SaleResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	WarehouseID *int64    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	SoldAt      time.Time `json:"sold_at"`
}
