package catalog

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

// initialStockNote nota fija de la entrada de auditoría que deja la creación.
const initialStockNote = "stock inicial"

// CreateProductUseCase crea un producto junto con su fila de inventario inicial
// en una sola transacción (todo o nada). La empresa dueña se deriva de la bodega destino.
type CreateProductUseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(txRunner TxRunner, warehouseRepo repository.WarehouseRepository) *CreateProductUseCase {
	return &CreateProductUseCase{txRunner: txRunner, warehouseRepo: warehouseRepo}
}

// Create valida la petición completa antes de tocar almacenamiento y luego inserta
// producto, inventario inicial y entrada de auditoría dentro de una transacción.
// Devuelve el ID asignado al producto.
//
// Errores: *domain.ValidationError (todos los campos problemáticos),
// domain.ErrNotFound (la bodega no existe), domain.ErrDuplicate (SKU ya registrado,
// transacción revertida), cualquier otro error es falla de persistencia.
func (uc *CreateProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return 0, fmt.Errorf("resolver bodega %d: %w", in.WarehouseID, err)
	}
	if warehouse == nil {
		return 0, fmt.Errorf("bodega %d: %w", in.WarehouseID, domain.ErrNotFound)
	}

	product := &entity.Product{
		CompanyID:  warehouse.CompanyID,
		Name:       in.Name,
		SKU:        in.SKU,
		Price:      in.Price,
		SupplierID: in.SupplierID,
		IsBundle:   in.IsBundle,
		CreatedAt:  time.Now(),
	}

	reference := uuid.New().String()

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		auditRepo repository.InventoryAuditRepository,
	) error {
		// El insert asigna product.ID (RETURNING) sin comprometer la tx;
		// la fila de inventario lo referencia antes del commit.
		if err := productRepo.Create(product); err != nil {
			return err
		}
		inv := &entity.Inventory{
			ProductID:   product.ID,
			WarehouseID: warehouse.ID,
			Quantity:    in.InitialQuantity,
			MinStock:    0,
			UpdatedAt:   time.Now(),
		}
		if err := inventoryRepo.Create(inv); err != nil {
			return err
		}
		if in.InitialQuantity > 0 {
			note := initialStockNote
			return auditRepo.Append(&entity.InventoryAudit{
				ProductID:   product.ID,
				WarehouseID: warehouse.ID,
				ChangeQty:   in.InitialQuantity,
				NewQuantity: in.InitialQuantity,
				Reference:   reference,
				ChangedAt:   time.Now(),
				Note:        &note,
			})
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return product.ID, nil
}
