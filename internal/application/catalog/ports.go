package catalog

import (
	"context"

	"github.com/invorya/stock-alerts-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad producto + inventario + auditoría:
// si fn devuelve error no persiste ninguna fila.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		auditRepo repository.InventoryAuditRepository,
	) error) error
}
