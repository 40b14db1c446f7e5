package inventory

import (
	"context"

	"github.com/invorya/stock-alerts-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Mismo contrato que catalog.TxRunner; el adaptador de postgres
// satisface ambos con una sola implementación.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		auditRepo repository.InventoryAuditRepository,
	) error) error
}
