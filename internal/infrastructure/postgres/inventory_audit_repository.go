package postgres

import (
	"context"
	"fmt"

	"github.com/invorya/stock-alerts-api/internal/domain/entity"
	"github.com/invorya/stock-alerts-api/internal/domain/repository"
)

var _ repository.InventoryAuditRepository = (*InventoryAuditRepo)(nil)

// InventoryAuditRepo implementación del puerto de auditoría sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lee: las entradas jamás se modifican.
type InventoryAuditRepo struct {
	q Querier
}

// NewInventoryAuditRepository construye el adaptador de auditoría. Pasar pool o tx (Querier).
func NewInventoryAuditRepository(q Querier) *InventoryAuditRepo {
	return &InventoryAuditRepo{q: q}
}

// Append inserta una entrada de auditoría y asigna el ID generado.
func (r *InventoryAuditRepo) Append(audit *entity.InventoryAudit) error {
	query := `
		INSERT INTO inventory_audit (product_id, warehouse_id, change_qty, new_quantity, reference, changed_at, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		audit.ProductID, audit.WarehouseID, audit.ChangeQty, audit.NewQuantity,
		audit.Reference, audit.ChangedAt, audit.Note,
	).Scan(&audit.ID)
	if err != nil {
		return fmt.Errorf("insert inventory audit: %w", err)
	}
	return nil
}

// ListByProduct lista el historial de un producto, más reciente primero.
func (r *InventoryAuditRepo) ListByProduct(productID int64, limit, offset int) ([]*entity.InventoryAudit, error) {
	query := `
		SELECT id, product_id, warehouse_id, change_qty, new_quantity, reference, changed_at, note
		FROM inventory_audit WHERE product_id = $1
		ORDER BY changed_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory audit: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryAudit
	for rows.Next() {
		var a entity.InventoryAudit
		if err := rows.Scan(&a.ID, &a.ProductID, &a.WarehouseID, &a.ChangeQty,
			&a.NewQuantity, &a.Reference, &a.ChangedAt, &a.Note); err != nil {
			return nil, fmt.Errorf("scan inventory audit: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
