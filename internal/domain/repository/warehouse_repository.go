package repository

import "github.com/invorya/stock-alerts-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id int64) (*entity.Warehouse, error)
	ListByCompany(companyID int64) ([]*entity.Warehouse, error)
}
