package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stock-alerts-api/internal/application/dto"
	"github.com/invorya/stock-alerts-api/internal/application/usecase"
	"github.com/invorya/stock-alerts-api/internal/domain"
	"github.com/invorya/stock-alerts-api/internal/domain/entity"
)

type fakeSaleRepo struct {
	created []*entity.Sale
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error {
	s.ID = int64(len(f.created) + 1)
	f.created = append(f.created, s)
	return nil
}

func newSaleFixture() (*usecase.SaleUseCase, *fakeSaleRepo) {
	sales := &fakeSaleRepo{}
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, CompanyID: 1, Name: "Widget A", SKU: "WID-001"},
	}}
	return usecase.NewSaleUseCase(sales, products), sales
}

// Caso 1: sin sold_at la venta queda fechada con el día local de hoy,
// sin importar la zona horaria del proceso (no el día UTC).
func TestRecord_FechaPorDefectoDiaLocal(t *testing.T) {
	uc, sales := newSaleFixture()

	out, err := uc.Record(dto.RecordSaleRequest{ProductID: 1, Quantity: 2})

	require.NoError(t, err)
	require.Len(t, sales.created, 1)

	wantY, wantM, wantD := time.Now().Date()
	gotY, gotM, gotD := out.SoldAt.Date()
	assert.Equal(t, wantY, gotY)
	assert.Equal(t, wantM, gotM)
	assert.Equal(t, wantD, gotD)
}

// Caso 2: sold_at explícito en YYYY-MM-DD se respeta tal cual.
func TestRecord_FechaExplicita(t *testing.T) {
	uc, _ := newSaleFixture()

	out, err := uc.Record(dto.RecordSaleRequest{ProductID: 1, Quantity: 1, SoldAt: "2026-08-15"})

	require.NoError(t, err)
	assert.Equal(t, 2026, out.SoldAt.Year())
	assert.Equal(t, time.August, out.SoldAt.Month())
	assert.Equal(t, 15, out.SoldAt.Day())
}

// Caso 3: fecha malformada → ErrInvalidInput.
func TestRecord_FechaInvalida(t *testing.T) {
	uc, sales := newSaleFixture()

	_, err := uc.Record(dto.RecordSaleRequest{ProductID: 1, Quantity: 1, SoldAt: "15/08/2026"})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, sales.created)
}

// Caso 4: cantidad no positiva → ErrInvalidInput.
func TestRecord_CantidadInvalida(t *testing.T) {
	uc, _ := newSaleFixture()

	_, err := uc.Record(dto.RecordSaleRequest{ProductID: 1, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Record(dto.RecordSaleRequest{ProductID: 1, Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 5: producto inexistente → ErrNotFound.
func TestRecord_ProductoInexistente(t *testing.T) {
	uc, _ := newSaleFixture()

	_, err := uc.Record(dto.RecordSaleRequest{ProductID: 999, Quantity: 1})

	require.ErrorIs(t, err, domain.ErrNotFound)
}
