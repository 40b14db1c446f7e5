package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/invorya/stock-alerts-api/internal/application/inventory"
	"github.com/invorya/stock-alerts-api/internal/application/dto"
	"github.com/invorya/stock-alerts-api/internal/domain"
	"github.com/invorya/stock-alerts-api/internal/domain/entity"
	"github.com/invorya/stock-alerts-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type key struct{ productID, warehouseID int64 }

// fakeInventoryRepo guarda cantidades por par (producto, bodega).
type fakeInventoryRepo struct {
	rows map[key]*entity.Inventory
}

func (f *fakeInventoryRepo) Create(inv *entity.Inventory) error {
	f.rows[key{inv.ProductID, inv.WarehouseID}] = inv
	return nil
}
func (f *fakeInventoryRepo) GetForUpdate(productID, warehouseID int64) (*entity.Inventory, error) {
	return f.rows[key{productID, warehouseID}], nil
}
func (f *fakeInventoryRepo) UpdateQuantity(productID, warehouseID, quantity int64) error {
	f.rows[key{productID, warehouseID}].Quantity = quantity
	return nil
}

type fakeAuditRepo struct {
	entries []*entity.InventoryAudit
}

func (f *fakeAuditRepo) Append(a *entity.InventoryAudit) error {
	f.entries = append(f.entries, a)
	return nil
}
func (f *fakeAuditRepo) ListByProduct(int64, int, int) ([]*entity.InventoryAudit, error) {
	return nil, nil
}

type noopProductRepo struct{}

func (noopProductRepo) Create(*entity.Product) error           { return nil }
func (noopProductRepo) GetByID(int64) (*entity.Product, error) { return nil, nil }
func (noopProductRepo) ListByCompany(int64, int, int) ([]*entity.Product, error) {
	return nil, nil
}

type fakeTxRunner struct {
	inventory *fakeInventoryRepo
	audit     *fakeAuditRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	auditRepo repository.InventoryAuditRepository,
) error) error {
	return fn(noopProductRepo{}, f.inventory, f.audit)
}

func newFixture(quantity int64) (*appinventory.AdjustStockUseCase, *fakeTxRunner) {
	runner := &fakeTxRunner{
		inventory: &fakeInventoryRepo{rows: map[key]*entity.Inventory{
			{1, 10}: {ID: 1, ProductID: 1, WarehouseID: 10, Quantity: quantity},
		}},
		audit: &fakeAuditRepo{},
	}
	return appinventory.NewAdjustStockUseCase(runner), runner
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: ajuste positivo actualiza la cantidad y deja auditoría.
func TestAdjust_EntradaPositiva(t *testing.T) {
	uc, runner := newFixture(5)

	out, err := uc.Adjust(context.Background(), dto.AdjustStockRequest{
		ProductID: 1, WarehouseID: 10, ChangeQty: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(12), out.NewQuantity)
	assert.NotEmpty(t, out.Reference)

	require.Len(t, runner.audit.entries, 1)
	entry := runner.audit.entries[0]
	assert.Equal(t, int64(7), entry.ChangeQty)
	assert.Equal(t, int64(12), entry.NewQuantity)
	assert.Equal(t, out.Reference, entry.Reference)
}

// Caso 2: ajuste negativo válido descuenta stock.
func TestAdjust_SalidaNegativa(t *testing.T) {
	uc, _ := newFixture(5)

	out, err := uc.Adjust(context.Background(), dto.AdjustStockRequest{
		ProductID: 1, WarehouseID: 10, ChangeQty: -5,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), out.NewQuantity, "llegar exacto a cero es válido")
}

// Caso 3: el ajuste que dejaría cantidad negativa se rechaza sin escribir nada.
func TestAdjust_StockInsuficiente(t *testing.T) {
	uc, runner := newFixture(3)

	_, err := uc.Adjust(context.Background(), dto.AdjustStockRequest{
		ProductID: 1, WarehouseID: 10, ChangeQty: -4,
	})

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(3), runner.inventory.rows[key{1, 10}].Quantity)
	assert.Empty(t, runner.audit.entries)
}

// Caso 4: par (producto, bodega) sin fila de inventario → ErrNotFound.
func TestAdjust_InventarioInexistente(t *testing.T) {
	uc, _ := newFixture(3)

	_, err := uc.Adjust(context.Background(), dto.AdjustStockRequest{
		ProductID: 2, WarehouseID: 10, ChangeQty: 1,
	})

	require.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 5: entrada inválida (ids no positivos o ajuste cero) → ErrInvalidInput.
func TestAdjust_EntradaInvalida(t *testing.T) {
	uc, _ := newFixture(3)

	cases := []dto.AdjustStockRequest{
		{ProductID: 0, WarehouseID: 10, ChangeQty: 1},
		{ProductID: 1, WarehouseID: 0, ChangeQty: 1},
		{ProductID: 1, WarehouseID: 10, ChangeQty: 0},
	}
	for _, in := range cases {
		_, err := uc.Adjust(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
