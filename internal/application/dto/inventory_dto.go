package dto

import "time"

// AdjustStockRequest entrada para ajustar el stock de un producto en una bodega.
// ChangeQty puede ser negativo (salida) o positivo (entrada); nunca cero.
type AdjustStockRequest struct {
	ProductID   int64   `json:"product_id"`
	WarehouseID int64   `json:"warehouse_id"`
	ChangeQty   int64   `json:"change_qty"`
	Note        *string `json:"note"`
}

// AdjustStockResponse salida del ajuste: cantidad resultante y referencia de auditoría.
type AdjustStockResponse struct {
	ProductID   int64     `json:"product_id"`
	WarehouseID int64     `json:"warehouse_id"`
	NewQuantity int64     `json:"new_quantity"`
	Reference   string    `json:"reference"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AuditEntryResponse un movimiento del historial de stock de un producto.
type AuditEntryResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	WarehouseID int64     `json:"warehouse_id"`
	ChangeQty   int64     `json:"change_qty"`
	NewQuantity int64     `json:"new_quantity"`
	Reference   string    `json:"reference"`
	ChangedAt   time.Time `json:"changed_at"`
	Note        *string   `json:"note"`
}

// AuditHistoryResponse historial de movimientos de stock de un producto.
type AuditHistoryResponse struct {
	Items []AuditEntryResponse `json:"items"`
}
