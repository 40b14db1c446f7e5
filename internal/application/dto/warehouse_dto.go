package dto

// CreateWarehouseRequest entrada para crear una bodega de una empresa.
type CreateWarehouseRequest struct {
	Name     string  `json:"name"`
	Location *string `json:"location"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        int64   `json:"id"`
	CompanyID int64   `json:"company_id"`
	Name      string  `json:"name"`
	Location  *string `json:"location"`
}

// WarehouseListResponse lista de bodegas de una empresa.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
}
