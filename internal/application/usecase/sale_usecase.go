package usecase

import (
	"fmt"
	"time"

	"github.com/invorya/stock-alerts-api/internal/application/dto"
	"github.com/invorya/stock-alerts-api/internal/domain"
	"github.com/invorya/stock-alerts-api/internal/domain/entity"
	"github.com/invorya/stock-alerts-api/internal/domain/repository"
)

// saleDateLayout formato de fecha de venta (granularidad de día).
const saleDateLayout = "2006-01-02"

// SaleUseCase registra ventas (hechos append-only que alimentan el motor de alertas).
type SaleUseCase struct {
	repo        repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, productRepo repository.ProductRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo, productRepo: productRepo}
}

// Record registra una venta. SoldAt en formato YYYY-MM-DD; vacío = hoy.
//
// Errores: domain.ErrInvalidInput (cantidad no positiva o fecha malformada),
// domain.ErrNotFound (el producto no existe).
func (uc *SaleUseCase) Record(in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID <= 0 || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	// Por defecto la fecha de hoy en hora local; Truncate recortaría al día UTC
	// y en offsets negativos una venta nocturna quedaría fechada ayer.
	y, m, d := time.Now().Date()
	soldAt := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if in.SoldAt != "" {
		parsed, err := time.Parse(saleDateLayout, in.SoldAt)
		if err != nil {
			return nil, fmt.Errorf("sold_at %q: %w", in.SoldAt, domain.ErrInvalidInput)
		}
		soldAt = parsed
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", in.ProductID, domain.ErrNotFound)
	}

	sale := &entity.Sale{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		SoldAt:      soldAt,
	}
	if err := uc.repo.Create(sale); err != nil {
		return nil, err
	}
	return &dto.SaleResponse{
		ID:          sale.ID,
		ProductID:   sale.ProductID,
		WarehouseID: sale.WarehouseID,
		Quantity:    sale.Quantity,
		SoldAt:      sale.SoldAt,
	}, nil
}
