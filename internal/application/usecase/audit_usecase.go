package usecase

import (
	"fmt"

	"github.com/invorya/stock-alerts-api/internal/application/dto"
	"github.com/invorya/stock-alerts-api/internal/domain"
	"github.com/invorya/stock-alerts-api/internal/domain/repository"
)

// AuditUseCase consulta el historial de movimientos de stock de un producto.
type AuditUseCase struct {
	repo        repository.InventoryAuditRepository
	productRepo repository.ProductRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(repo repository.InventoryAuditRepository, productRepo repository.ProductRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo, productRepo: productRepo}
}

// ListByProduct devuelve los movimientos de stock de un producto, del más
// reciente al más antiguo, con paginación.
//
// Errores: domain.ErrNotFound si el producto no existe.
func (uc *AuditUseCase) ListByProduct(productID int64, limit, offset int) (*dto.AuditHistoryResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
	}
	entries, err := uc.repo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.AuditEntryResponse{
			ID:          e.ID,
			ProductID:   e.ProductID,
			WarehouseID: e.WarehouseID,
			ChangeQty:   e.ChangeQty,
			NewQuantity: e.NewQuantity,
			Reference:   e.Reference,
			ChangedAt:   e.ChangedAt,
			Note:        e.Note,
		})
	}
	return &dto.AuditHistoryResponse{Items: items}, nil
}
