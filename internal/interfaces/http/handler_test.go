package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stock-alerts-api/internal/application/alerts"
	"github.com/invorya/stock-alerts-api/internal/application/catalog"
	"github.com/invorya/stock-alerts-api/internal/application/dto"
	"github.com/invorya/stock-alerts-api/internal/application/usecase"
	"github.com/invorya/stock-alerts-api/internal/domain"
	"github.com/invorya/stock-alerts-api/internal/domain/entity"
	"github.com/invorya/stock-alerts-api/internal/domain/repository"
	apphttp "github.com/invorya/stock-alerts-api/internal/interfaces/http"
	"github.com/invorya/stock-alerts-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeWarehouseRepo struct {
	warehouses map[int64]*entity.Warehouse
}

func (f *fakeWarehouseRepo) Create(*entity.Warehouse) error { return nil }
func (f *fakeWarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	return f.warehouses[id], nil
}
func (f *fakeWarehouseRepo) ListByCompany(int64) ([]*entity.Warehouse, error) { return nil, nil }

type fakeCompanyRepo struct {
	companies map[int64]*entity.Company
}

func (f *fakeCompanyRepo) Create(*entity.Company) error { return nil }
func (f *fakeCompanyRepo) GetByID(id int64) (*entity.Company, error) {
	return f.companies[id], nil
}
func (f *fakeCompanyRepo) List(int, int) ([]*entity.Company, error) { return nil, nil }

type fakeAlertRepo struct {
	totals []repository.ProductSalesTotal
	stock  []repository.CompanyStockRow
}

func (f *fakeAlertRepo) GetRecentSalesTotals(context.Context, int64, time.Time) ([]repository.ProductSalesTotal, error) {
	return f.totals, nil
}
func (f *fakeAlertRepo) ListCompanyStock(context.Context, int64) ([]repository.CompanyStockRow, error) {
	return f.stock, nil
}

// fakeProductRepo asigna IDs secuenciales; createErr simula fallas o SKU duplicado.
type fakeProductRepo struct {
	nextID    int64
	createErr error
	list      []*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	p.ID = f.nextID
	return nil
}
func (f *fakeProductRepo) GetByID(int64) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) ListByCompany(int64, int, int) ([]*entity.Product, error) {
	return f.list, nil
}

type fakeInventoryRepo struct{}

func (fakeInventoryRepo) Create(*entity.Inventory) error { return nil }
func (fakeInventoryRepo) GetForUpdate(int64, int64) (*entity.Inventory, error) {
	return nil, nil
}
func (fakeInventoryRepo) UpdateQuantity(int64, int64, int64) error { return nil }

type fakeAuditRepo struct{}

func (fakeAuditRepo) Append(*entity.InventoryAudit) error { return nil }
func (fakeAuditRepo) ListByProduct(int64, int, int) ([]*entity.InventoryAudit, error) {
	return nil, nil
}

type fakeTxRunner struct {
	products *fakeProductRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	auditRepo repository.InventoryAuditRepository,
) error) error {
	return fn(f.products, fakeInventoryRepo{}, fakeAuditRepo{})
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// buildProductApp monta POST /api/products con el caso de uso sobre fakes.
func buildProductApp(products *fakeProductRepo) *fiber.App {
	runner := &fakeTxRunner{products: products}
	warehouses := &fakeWarehouseRepo{warehouses: map[int64]*entity.Warehouse{
		10: {ID: 10, CompanyID: 1, Name: "Bodega Principal"},
	}}
	companies := &fakeCompanyRepo{companies: map[int64]*entity.Company{
		1: {ID: 1, Name: "Test Company"},
	}}
	createUC := catalog.NewCreateProductUseCase(runner, warehouses)
	queryUC := usecase.NewProductUseCase(products, companies)
	handler := apphttp.NewProductHandler(createUC, queryUC, testLogger())

	app := fiber.New()
	app.Post("/api/products", handler.Create)
	app.Get("/api/companies/:id/products", handler.ListByCompany)
	return app
}

// buildAlertApp monta GET /api/companies/:id/alerts/low-stock sobre fakes.
func buildAlertApp(alertRepo *fakeAlertRepo) *fiber.App {
	companies := &fakeCompanyRepo{companies: map[int64]*entity.Company{
		1: {ID: 1, Name: "Test Company"},
	}}
	uc := alerts.NewLowStockUseCase(companies, alertRepo)
	handler := apphttp.NewAlertHandler(uc, testLogger())

	app := fiber.New()
	app.Get("/api/companies/:id/alerts/low-stock", handler.LowStock)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeAPIResponse(t *testing.T, resp *http.Response) dto.APIResponse {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.APIResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/products
// ──────────────────────────────────────────────────────────────────────────────

const validProductBody = `{
	"name": "Widget A",
	"sku": "WID-001",
	"price": 10.99,
	"warehouse_id": 10,
	"initial_quantity": 5
}`

// Caso 1: creación válida → 201 con {success: true, data.product_id}.
func TestCreateProduct_Creado(t *testing.T) {
	app := buildProductApp(&fakeProductRepo{})

	resp := postJSON(t, app, "/api/products", validProductBody)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := decodeAPIResponse(t, resp)
	assert.True(t, out.Success)
	data, ok := out.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), data["product_id"])
}

// Caso 2: petición inválida → 400 con todos los campos problemáticos en el error.
func TestCreateProduct_ValidacionFallida(t *testing.T) {
	app := buildProductApp(&fakeProductRepo{})

	resp := postJSON(t, app, "/api/products", `{
		"name": "",
		"sku": "WID-001",
		"price": 0,
		"warehouse_id": 10,
		"initial_quantity": 5
	}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decodeAPIResponse(t, resp)
	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "name")
	assert.Contains(t, out.Error, "price")
}

// Caso 3: SKU duplicado → 409.
func TestCreateProduct_SKUDuplicado(t *testing.T) {
	app := buildProductApp(&fakeProductRepo{createErr: domain.ErrDuplicate})

	resp := postJSON(t, app, "/api/products", validProductBody)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	out := decodeAPIResponse(t, resp)
	assert.False(t, out.Success)
	assert.Equal(t, "el SKU ya existe", out.Error)
}

// Caso 4: bodega inexistente → 400, no 500.
func TestCreateProduct_BodegaInexistente(t *testing.T) {
	app := buildProductApp(&fakeProductRepo{})

	resp := postJSON(t, app, "/api/products", `{
		"name": "Widget A",
		"sku": "WID-001",
		"price": 10.99,
		"warehouse_id": 999,
		"initial_quantity": 5
	}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decodeAPIResponse(t, resp)
	assert.False(t, out.Success)
	assert.Equal(t, "la bodega indicada no existe", out.Error)
}

// Caso 5: JSON malformado → 400 sin tocar el caso de uso.
func TestCreateProduct_CuerpoInvalido(t *testing.T) {
	app := buildProductApp(&fakeProductRepo{})

	resp := postJSON(t, app, "/api/products", `{"name": `)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GET /api/companies/:id/products
// ──────────────────────────────────────────────────────────────────────────────

// Caso 6: listado de productos de la empresa → 200 con items.
func TestListProducts_PorEmpresa(t *testing.T) {
	products := &fakeProductRepo{list: []*entity.Product{
		{ID: 1, CompanyID: 1, Name: "Widget A", SKU: "WID-001"},
		{ID: 2, CompanyID: 1, Name: "Widget B", SKU: "WID-002", IsBundle: true},
	}}
	app := buildProductApp(products)

	req := httptest.NewRequest(http.MethodGet, "/api/companies/1/products", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ProductListResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Items, 2)
	assert.Equal(t, "WID-001", out.Items[0].SKU)
	assert.True(t, out.Items[1].IsBundle)
}

// Caso 7: listado para empresa inexistente → 404.
func TestListProducts_EmpresaInexistente(t *testing.T) {
	app := buildProductApp(&fakeProductRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/companies/999/products", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GET /api/companies/:id/alerts/low-stock
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: empresa con un producto bajo umbral → 200 con la alerta y el conteo.
func TestLowStock_ConAlertas(t *testing.T) {
	app := buildAlertApp(&fakeAlertRepo{
		totals: []repository.ProductSalesTotal{{ProductID: 100, TotalSales: 30}},
		stock: []repository.CompanyStockRow{{
			ProductID:     100,
			ProductName:   "Widget A",
			SKU:           "WID-001",
			WarehouseID:   10,
			WarehouseName: "Bodega Principal",
			Quantity:      10,
			SupplierID:    i64Ptr(7),
			SupplierName:  strPtr("Supplier Corp"),
			SupplierEmail: strPtr("orders@supplier.com"),
		}},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/companies/1/alerts/low-stock", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.LowStockAlertsResponse
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.Equal(t, 1, out.TotalAlerts)
	require.Len(t, out.Alerts, 1)
	alert := out.Alerts[0]
	assert.Equal(t, "WID-001", alert.SKU)
	assert.Equal(t, int64(10), alert.CurrentStock)
	assert.Equal(t, int64(20), alert.Threshold)
	require.NotNil(t, alert.DaysUntilStockout)
	assert.Equal(t, int64(10), *alert.DaysUntilStockout)
	require.NotNil(t, alert.Supplier.Name)
	assert.Equal(t, "Supplier Corp", *alert.Supplier.Name)
}

// Caso 2: empresa sin productos en riesgo → 200 con lista vacía, no 404.
func TestLowStock_SinAlertas(t *testing.T) {
	app := buildAlertApp(&fakeAlertRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/companies/1/alerts/low-stock", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.LowStockAlertsResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, 0, out.TotalAlerts)
	assert.NotNil(t, out.Alerts, "alerts debe serializar como [] y no como null")
}

// Caso 3: empresa inexistente → 404.
func TestLowStock_EmpresaInexistente(t *testing.T) {
	app := buildAlertApp(&fakeAlertRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/companies/999/alerts/low-stock", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "NOT_FOUND", out.Code)
}

// Caso 4: id no numérico o no positivo → 400.
func TestLowStock_IDInvalido(t *testing.T) {
	app := buildAlertApp(&fakeAlertRepo{})

	for _, path := range []string{
		"/api/companies/abc/alerts/low-stock",
		"/api/companies/0/alerts/low-stock",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
	}
}
