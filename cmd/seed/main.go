// seed pobla la base con un dataset de demostración: una empresa con dos bodegas,
// un proveedor, tres productos (uno bundle) y 30 días de ventas, suficiente para
// ejercitar el endpoint de alertas de stock bajo.
//
// Uso: go run ./cmd/seed (lee la misma configuración de BD que la API).
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invorya/stock-alerts-api/internal/domain/entity"
	"github.com/invorya/stock-alerts-api/internal/infrastructure/postgres"
	"github.com/invorya/stock-alerts-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)

	company := &entity.Company{Name: "Test Company", CreatedAt: time.Now()}
	must(companyRepo.Create(company))

	email := "orders@supplier.com"
	phone := "123-456-7890"
	supplier := &entity.Supplier{Name: "Supplier Corp", ContactEmail: &email, ContactPhone: &phone}
	must(supplierRepo.Create(supplier))

	loc1, loc2 := "New York", "Los Angeles"
	warehouse1 := &entity.Warehouse{CompanyID: company.ID, Name: "Main Warehouse", Location: &loc1}
	warehouse2 := &entity.Warehouse{CompanyID: company.ID, Name: "Secondary Warehouse", Location: &loc2}
	must(warehouseRepo.Create(warehouse1))
	must(warehouseRepo.Create(warehouse2))

	products := []*entity.Product{
		{CompanyID: company.ID, Name: "Widget A", SKU: "WID-001", Price: decimal.NewFromFloat(10.99), SupplierID: &supplier.ID, IsBundle: false, CreatedAt: time.Now()},
		{CompanyID: company.ID, Name: "Widget B", SKU: "WID-002", Price: decimal.NewFromFloat(20.99), SupplierID: &supplier.ID, IsBundle: true, CreatedAt: time.Now()},
		{CompanyID: company.ID, Name: "Widget C", SKU: "WID-003", Price: decimal.NewFromFloat(15.99), SupplierID: &supplier.ID, IsBundle: false, CreatedAt: time.Now()},
	}
	for _, p := range products {
		must(productRepo.Create(p))
	}

	// El bundle Widget B se compone de 2 Widget A + 1 Widget C.
	_, err = pool.Exec(ctx,
		`INSERT INTO bundle_items (bundle_product_id, component_product_id, quantity) VALUES ($1, $2, $3), ($1, $4, $5)`,
		products[1].ID, products[0].ID, 2, products[2].ID, 1,
	)
	must(err)

	inventories := []*entity.Inventory{
		// Widget A bajo en Main, normal en Secondary
		{ProductID: products[0].ID, WarehouseID: warehouse1.ID, Quantity: 5, MinStock: 10, UpdatedAt: time.Now()},
		{ProductID: products[0].ID, WarehouseID: warehouse2.ID, Quantity: 50, MinStock: 10, UpdatedAt: time.Now()},
		// Widget B (bundle) bajo en Main
		{ProductID: products[1].ID, WarehouseID: warehouse1.ID, Quantity: 8, MinStock: 5, UpdatedAt: time.Now()},
		// Widget C alto en Main
		{ProductID: products[2].ID, WarehouseID: warehouse1.ID, Quantity: 100, MinStock: 20, UpdatedAt: time.Now()},
	}
	for _, inv := range inventories {
		must(inventoryRepo.Create(inv))
	}

	today := time.Now().Truncate(24 * time.Hour)

	// Widget A: ventas diarias; Widget B: día por medio; Widget C: alto volumen diario.
	for i := 0; i < 30; i++ {
		day := today.AddDate(0, 0, -i)
		must(saleRepo.Create(&entity.Sale{
			ProductID: products[0].ID, WarehouseID: &warehouse1.ID,
			Quantity: int64(rand.Intn(3) + 1), SoldAt: day,
		}))
		if i%2 == 0 {
			must(saleRepo.Create(&entity.Sale{
				ProductID: products[1].ID, WarehouseID: &warehouse1.ID,
				Quantity: int64(rand.Intn(2) + 1), SoldAt: day,
			}))
		}
		must(saleRepo.Create(&entity.Sale{
			ProductID: products[2].ID, WarehouseID: &warehouse1.ID,
			Quantity: int64(rand.Intn(3) + 3), SoldAt: day,
		}))
	}

	fmt.Printf("Datos de prueba creados. company_id=%d\n", company.ID)
	fmt.Printf("Alertas: GET /api/companies/%d/alerts/low-stock\n", company.ID)
}

func must(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}
