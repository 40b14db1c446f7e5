package repository

import "github.com/invorya/stock-alerts-api/internal/domain/entity"

// InventoryAuditRepository define el puerto para el historial de cambios de stock.
// Solo inserción: las entradas nunca se modifican ni se borran.
type InventoryAuditRepository interface {
	Append(audit *entity.InventoryAudit) error
	ListByProduct(productID int64, limit, offset int) ([]*entity.InventoryAudit, error)
}
