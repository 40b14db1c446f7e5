package entity

// Warehouse representa una bodega donde se almacena inventario.
// El nombre es único dentro de la empresa.
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
	Location  *string
}
