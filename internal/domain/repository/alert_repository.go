package repository

import (
	"context"
	"time"
)

// ProductSalesTotal resultado crudo de la agregación de ventas recientes por producto.
// Lo produce la DB; el use case lo convierte en un lookup productID → total.
type ProductSalesTotal struct {
	ProductID  int64
	TotalSales int64
}

// CompanyStockRow fila cruda del listado de inventario de una empresa:
// (inventory, product, warehouse) con LEFT JOIN a supplier (campos nil si no hay proveedor).
type CompanyStockRow struct {
	ProductID     int64
	ProductName   string
	SKU           string
	IsBundle      bool
	WarehouseID   int64
	WarehouseName string
	Quantity      int64
	MinStock      int64
	SupplierID    *int64
	SupplierName  *string
	SupplierEmail *string
}

// AlertRepository define las consultas de lectura del motor de alertas de stock.
// Las implementaciones son read-only (no modifican datos).
type AlertRepository interface {
	// GetRecentSalesTotals agrega la cantidad vendida por producto desde `since` (inclusive),
	// restringido a productos con inventario en bodegas de la empresa dada
	// (join ventas → productos → inventario → bodegas → empresa).
	GetRecentSalesTotals(ctx context.Context, companyID int64, since time.Time) ([]ProductSalesTotal, error)

	// ListCompanyStock devuelve todas las filas de inventario de la empresa con su
	// producto, bodega y proveedor opcional.
	ListCompanyStock(ctx context.Context, companyID int64) ([]CompanyStockRow, error)
}
