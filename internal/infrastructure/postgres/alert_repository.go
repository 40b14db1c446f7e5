package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/stock-alerts-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo consultas de solo lectura del motor de alertas de stock bajo.
type AlertRepo struct {
	pool *pgxpool.Pool
}

// NewAlertRepository construye el adaptador de alertas.
func NewAlertRepository(pool *pgxpool.Pool) *AlertRepo {
	return &AlertRepo{pool: pool}
}

// GetRecentSalesTotals agrega la cantidad vendida por producto desde `since` (inclusive).
// El join atribuye la venta a la empresa a través de alguna fila de inventario del
// producto en una bodega de la empresa: un producto con ventas pero sin inventario
// en bodegas de la empresa queda excluido.
func (r *AlertRepo) GetRecentSalesTotals(
	ctx context.Context,
	companyID int64,
	since time.Time,
) ([]repository.ProductSalesTotal, error) {
	const query = `
	SELECT
	    s.product_id,
	    SUM(s.quantity) AS total_sales
	FROM sales s
	JOIN products   p ON p.id = s.product_id
	JOIN inventory  i ON i.product_id = p.id
	JOIN warehouses w ON w.id = i.warehouse_id
	WHERE w.company_id = $1
	  AND s.sold_at >= $2
	GROUP BY s.product_id`

	rows, err := r.pool.Query(ctx, query, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("alerts.GetRecentSalesTotals: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductSalesTotal
	for rows.Next() {
		var row repository.ProductSalesTotal
		if err := rows.Scan(&row.ProductID, &row.TotalSales); err != nil {
			return nil, fmt.Errorf("alerts.GetRecentSalesTotals scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ListCompanyStock devuelve todas las filas de inventario de la empresa con su
// producto y bodega, y el proveedor opcional (LEFT JOIN: columnas NULL si no hay).
func (r *AlertRepo) ListCompanyStock(
	ctx context.Context,
	companyID int64,
) ([]repository.CompanyStockRow, error) {
	const query = `
	SELECT
	    p.id            AS product_id,
	    p.name          AS product_name,
	    p.sku,
	    p.is_bundle,
	    w.id            AS warehouse_id,
	    w.name          AS warehouse_name,
	    i.quantity,
	    i.min_stock,
	    sp.id           AS supplier_id,
	    sp.name         AS supplier_name,
	    sp.contact_email
	FROM inventory i
	JOIN products   p  ON p.id = i.product_id
	JOIN warehouses w  ON w.id = i.warehouse_id
	LEFT JOIN suppliers sp ON sp.id = p.supplier_id
	WHERE w.company_id = $1`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("alerts.ListCompanyStock: %w", err)
	}
	defer rows.Close()

	var results []repository.CompanyStockRow
	for rows.Next() {
		var row repository.CompanyStockRow
		if err := rows.Scan(
			&row.ProductID,
			&row.ProductName,
			&row.SKU,
			&row.IsBundle,
			&row.WarehouseID,
			&row.WarehouseName,
			&row.Quantity,
			&row.MinStock,
			&row.SupplierID,
			&row.SupplierName,
			&row.SupplierEmail,
		); err != nil {
			return nil, fmt.Errorf("alerts.ListCompanyStock scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
