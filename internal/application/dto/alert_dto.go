package dto

// SupplierInfo identidad del proveedor dentro de una alerta.
// Todos los campos son nil cuando el producto no tiene proveedor asociado.
type SupplierInfo struct {
	ID           *int64  `json:"id"`
	Name         *string `json:"name"`
	ContactEmail *string `json:"contact_email"`
}

// LowStockAlertDTO una alerta de stock bajo para un par (producto, bodega).
type LowStockAlertDTO struct {
	ProductID         int64        `json:"product_id"`
	ProductName       string       `json:"product_name"`
	SKU               string       `json:"sku"`
	WarehouseID       int64        `json:"warehouse_id"`
	WarehouseName     string       `json:"warehouse_name"`
	CurrentStock      int64        `json:"current_stock"`
	Threshold         int64        `json:"threshold"`
	DaysUntilStockout *int64       `json:"days_until_stockout"`
	Supplier          SupplierInfo `json:"supplier"`
}

// LowStockAlertsResponse conjunto de alertas más su conteo.
// No hay garantía de orden entre alertas.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
