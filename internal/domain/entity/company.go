package entity

import "time"

// Company representa una organización/tenant del sistema. Es la raíz de propiedad:
// sus bodegas y productos (y por transición inventario, ventas y auditoría) se eliminan en cascada.
type Company struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
