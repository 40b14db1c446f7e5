package repository

import "github.com/invorya/stock-alerts-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para las filas de stock.
// Una fila por par (producto, bodega); se crea una vez y después solo se actualiza.
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar solo dentro de una transacción.
	GetForUpdate(productID, warehouseID int64) (*entity.Inventory, error)
	UpdateQuantity(productID, warehouseID, quantity int64) error
}
