package repository

import "github.com/invorya/stock-alerts-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas (hechos append-only).
type SaleRepository interface {
	Create(sale *entity.Sale) error
}
