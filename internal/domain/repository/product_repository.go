package repository

import "github.com/invorya/stock-alerts-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// Create asigna el ID generado por la base sobre la entidad (INSERT ... RETURNING id)
// sin comprometer la transacción: la fila de inventario del mismo flujo lo necesita.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	ListByCompany(companyID int64, limit, offset int) ([]*entity.Product, error)
}
