package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/stock-alerts-api/internal/application/dto"
	"github.com/invorya/stock-alerts-api/internal/domain"
	"github.com/invorya/stock-alerts-api/internal/domain/entity"
	"github.com/invorya/stock-alerts-api/internal/domain/repository"
)

// AdjustStockUseCase aplica un ajuste de cantidad sobre una fila de inventario
// de forma transaccional: bloquea la fila (SELECT FOR UPDATE), actualiza la cantidad
// y deja la entrada de auditoría en la misma transacción.
type AdjustStockUseCase struct {
	txRunner TxRunner
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner}
}

// Adjust aplica el cambio de cantidad. El resultado nunca puede quedar negativo.
//
// Errores: domain.ErrInvalidInput (campos inválidos o ajuste cero),
// domain.ErrNotFound (no existe fila de inventario para el par producto/bodega),
// domain.ErrInsufficientStock (el ajuste dejaría cantidad negativa).
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, in dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	if in.ProductID <= 0 || in.WarehouseID <= 0 || in.ChangeQty == 0 {
		return nil, domain.ErrInvalidInput
	}

	reference := uuid.New().String()
	now := time.Now()
	var out *dto.AdjustStockResponse

	err := uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		auditRepo repository.InventoryAuditRepository,
	) error {
		// Bloquea la fila para evitar ajustes concurrentes sobre el mismo par.
		inv, err := inventoryRepo.GetForUpdate(in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		if inv == nil {
			return fmt.Errorf("inventario producto %d bodega %d: %w", in.ProductID, in.WarehouseID, domain.ErrNotFound)
		}

		newQty := inv.Quantity + in.ChangeQty
		if newQty < 0 {
			return fmt.Errorf("cantidad resultante %d: %w", newQty, domain.ErrInsufficientStock)
		}

		if err := inventoryRepo.UpdateQuantity(in.ProductID, in.WarehouseID, newQty); err != nil {
			return err
		}
		if err := auditRepo.Append(&entity.InventoryAudit{
			ProductID:   in.ProductID,
			WarehouseID: in.WarehouseID,
			ChangeQty:   in.ChangeQty,
			NewQuantity: newQty,
			Reference:   reference,
			ChangedAt:   now,
			Note:        in.Note,
		}); err != nil {
			return err
		}

		out = &dto.AdjustStockResponse{
			ProductID:   in.ProductID,
			WarehouseID: in.WarehouseID,
			NewQuantity: newQty,
			Reference:   reference,
			UpdatedAt:   now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
