package usecase

import (
	"fmt"

	"github.com/invorya/stock-alerts-api/internal/application/dto"
	"github.com/invorya/stock-alerts-api/internal/domain"
	"github.com/invorya/stock-alerts-api/internal/domain/repository"
)

// ProductUseCase consultas de catálogo (la creación vive en el paquete catalog
// por su contrato transaccional).
type ProductUseCase struct {
	repo        repository.ProductRepository
	companyRepo repository.CompanyRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, companyRepo repository.CompanyRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, companyRepo: companyRepo}
}

// ListByCompany lista los productos de una empresa con paginación.
//
// Errores: domain.ErrNotFound si la empresa no existe.
func (uc *ProductUseCase) ListByCompany(companyID int64, limit, offset int) (*dto.ProductListResponse, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("empresa %d: %w", companyID, domain.ErrNotFound)
	}
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProductResponse{
			ID:         p.ID,
			CompanyID:  p.CompanyID,
			Name:       p.Name,
			SKU:        p.SKU,
			Price:      p.Price,
			SupplierID: p.SupplierID,
			IsBundle:   p.IsBundle,
			CreatedAt:  p.CreatedAt,
		})
	}
	return &dto.ProductListResponse{Items: items}, nil
}
