package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stock-alerts-api/internal/application/alerts"
	"github.com/invorya/stock-alerts-api/internal/application/catalog"
	appinventory "github.com/invorya/stock-alerts-api/internal/application/inventory"
	"github.com/invorya/stock-alerts-api/internal/application/usecase"
	"github.com/invorya/stock-alerts-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC     *usecase.CompanyUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	SupplierUC    *usecase.SupplierUseCase
	SaleUC        *usecase.SaleUseCase
	ProductUC     *usecase.ProductUseCase
	AuditUC       *usecase.AuditUseCase
	CreateProduct *catalog.CreateProductUseCase
	AdjustStock   *appinventory.AdjustStockUseCase
	LowStock      *alerts.LowStockUseCase
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Companies y sus recursos anidados
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Log)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.Log)
	companies.Post("/:id/warehouses", warehouseHandler.Create)
	companies.Get("/:id/warehouses", warehouseHandler.List)

	alertHandler := NewAlertHandler(deps.LowStock, deps.Log)
	companies.Get("/:id/alerts/low-stock", alertHandler.LowStock)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Log)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	// Products
	productHandler := NewProductHandler(deps.CreateProduct, deps.ProductUC, deps.Log)
	api.Post("/products", productHandler.Create)
	companies.Get("/:id/products", productHandler.ListByCompany)

	// Sales
	saleHandler := NewSaleHandler(deps.SaleUC, deps.Log)
	api.Post("/sales", saleHandler.Record)

	// Inventory adjustments e historial
	inventoryHandler := NewInventoryHandler(deps.AdjustStock, deps.AuditUC, deps.Log)
	api.Post("/inventory/adjustments", inventoryHandler.Adjust)
	api.Get("/products/:id/audit", inventoryHandler.History)
}
