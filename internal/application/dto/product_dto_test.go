package dto_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stock-alerts-api/internal/application/dto"
	"github.com/invorya/stock-alerts-api/internal/domain"
)

func validRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:            "Widget A",
		SKU:             "WID-001",
		Price:           decimal.NewFromFloat(10.99),
		WarehouseID:     1,
		InitialQuantity: 5,
	}
}

func TestValidate_PeticionValida(t *testing.T) {
	assert.NoError(t, validRequest().Validate())
}

// La validación reporta todas las violaciones juntas, no solo la primera.
func TestValidate_RecolectaTodosLosErrores(t *testing.T) {
	in := validRequest()
	in.Name = ""
	in.Price = decimal.NewFromInt(-5)

	err := in.Validate()
	require.Error(t, err)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"name", "price"}, ve.Fields())
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "price")
}

func TestValidate_LimitesDeLongitud(t *testing.T) {
	in := validRequest()
	in.Name = strings.Repeat("a", 255)
	in.SKU = strings.Repeat("b", 100)
	assert.NoError(t, in.Validate())

	in.Name = strings.Repeat("a", 256)
	in.SKU = strings.Repeat("b", 101)
	err := in.Validate()
	require.Error(t, err)
	ve, _ := domain.AsValidationError(err)
	assert.ElementsMatch(t, []string{"name", "sku"}, ve.Fields())
}

// Los límites cuentan caracteres: 255 letras acentuadas (510 bytes) son válidas.
func TestValidate_LongitudEnCaracteresNoBytes(t *testing.T) {
	in := validRequest()
	in.Name = strings.Repeat("á", 255)
	assert.NoError(t, in.Validate())

	in.Name = strings.Repeat("á", 256)
	err := in.Validate()
	require.Error(t, err)
	ve, _ := domain.AsValidationError(err)
	assert.Equal(t, []string{"name"}, ve.Fields())
}

func TestValidate_PrecioCeroInvalido(t *testing.T) {
	in := validRequest()
	in.Price = decimal.Zero
	err := in.Validate()
	require.Error(t, err)
	ve, _ := domain.AsValidationError(err)
	assert.Equal(t, []string{"price"}, ve.Fields())
}

func TestValidate_CantidadInicialCeroValida(t *testing.T) {
	in := validRequest()
	in.InitialQuantity = 0
	assert.NoError(t, in.Validate())

	in.InitialQuantity = -1
	assert.Error(t, in.Validate())
}

func TestValidate_BodegaRequerida(t *testing.T) {
	in := validRequest()
	in.WarehouseID = 0
	err := in.Validate()
	require.Error(t, err)
	ve, _ := domain.AsValidationError(err)
	assert.Equal(t, []string{"warehouse_id"}, ve.Fields())
}

func TestValidate_ProveedorOpcional(t *testing.T) {
	in := validRequest()
	assert.NoError(t, in.Validate()) // sin proveedor

	sid := int64(7)
	in.SupplierID = &sid
	assert.NoError(t, in.Validate())

	bad := int64(0)
	in.SupplierID = &bad
	assert.Error(t, in.Validate())
}
