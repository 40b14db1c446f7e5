package entity

import "time"

// InventoryAudit es una entrada append-only del historial de cambios de stock.
// Nunca se actualiza ni se borra desde la aplicación. Reference agrupa las filas
// generadas por una misma operación transaccional.
type InventoryAudit struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	ChangeQty   int64
	NewQuantity int64
	Reference   string
	ChangedAt   time.Time
	Note        *string
}
