package dto

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/invorya/stock-alerts-api/internal/domain"
)

// CreateProductRequest entrada para crear un producto con su inventario inicial.
type CreateProductRequest struct {
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Price           decimal.Decimal `json:"price"`
	WarehouseID     int64           `json:"warehouse_id"`
	InitialQuantity int64           `json:"initial_quantity"`
	SupplierID      *int64          `json:"supplier_id"`
	IsBundle        bool            `json:"is_bundle"`
}

// Validate verifica todos los campos y devuelve un ValidationError con cada
// violación encontrada (no se corta en la primera). Función pura: no toca almacenamiento.
func (r CreateProductRequest) Validate() error {
	var violations []domain.FieldViolation
	add := func(field, msg string) {
		violations = append(violations, domain.FieldViolation{Field: field, Message: msg})
	}

	// Los límites son en caracteres, no en bytes (nombres acentuados cuentan igual).
	if n := utf8.RuneCountInString(r.Name); n < 1 || n > 255 {
		add("name", "requerido, entre 1 y 255 caracteres")
	}
	if n := utf8.RuneCountInString(r.SKU); n < 1 || n > 100 {
		add("sku", "requerido, entre 1 y 100 caracteres")
	}
	if !r.Price.GreaterThan(decimal.Zero) {
		add("price", "debe ser mayor que 0")
	}
	if r.WarehouseID <= 0 {
		add("warehouse_id", "debe ser un entero positivo")
	}
	if r.InitialQuantity < 0 {
		add("initial_quantity", "no puede ser negativo")
	}
	if r.SupplierID != nil && *r.SupplierID <= 0 {
		add("supplier_id", "debe ser un entero positivo si se envía")
	}

	return domain.NewValidationError(violations)
}

// CreateProductData payload de éxito de la creación.
type CreateProductData struct {
	ProductID int64 `json:"product_id"`
}

// ProductListResponse productos de una empresa.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         int64           `json:"id"`
	CompanyID  int64           `json:"company_id"`
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	Price      decimal.Decimal `json:"price"`
	SupplierID *int64          `json:"supplier_id"`
	IsBundle   bool            `json:"is_bundle"`
	CreatedAt  time.Time       `json:"created_at"`
}
