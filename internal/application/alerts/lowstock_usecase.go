package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/invorya/stock-alerts-api/internal/application/dto"
	"github.com/invorya/stock-alerts-api/internal/domain"
	"github.com/invorya/stock-alerts-api/internal/domain/alert"
	"github.com/invorya/stock-alerts-api/internal/domain/repository"
)

// LowStockUseCase calcula las alertas de stock bajo de una empresa a partir de la
// velocidad de venta reciente. Combina dos consultas: la agregación de ventas por
// producto y el listado de inventario, unidas en memoria vía un lookup por producto
// para evitar una consulta por fila.
type LowStockUseCase struct {
	companyRepo repository.CompanyRepository
	alertRepo   repository.AlertRepository
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(
	companyRepo repository.CompanyRepository,
	alertRepo repository.AlertRepository,
) *LowStockUseCase {
	return &LowStockUseCase{companyRepo: companyRepo, alertRepo: alertRepo}
}

// GetLowStockAlerts devuelve una alerta por cada par (producto, bodega) de la empresa
// con ventas recientes y stock por debajo del umbral de su categoría, más el conteo.
// Sin garantía de orden entre alertas.
//
// Errores: domain.ErrNotFound si la empresa no existe; cualquier otro error es
// falla de persistencia y no produce resultados parciales.
func (uc *LowStockUseCase) GetLowStockAlerts(ctx context.Context, companyID int64) (*dto.LowStockAlertsResponse, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, fmt.Errorf("verificar empresa %d: %w", companyID, err)
	}
	if company == nil {
		return nil, fmt.Errorf("empresa %d: %w", companyID, domain.ErrNotFound)
	}

	// Ventana de ventas recientes: últimos 30 días, inclusivo (sold_at >= since).
	since := time.Now().AddDate(0, 0, -alert.RecentSalesDays)

	// 1. Total vendido por producto en una sola consulta (evita N+1).
	totals, err := uc.alertRepo.GetRecentSalesTotals(ctx, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("agregar ventas recientes: %w", err)
	}

	// Lookup: productID → total vendido en la ventana.
	salesLookup := make(map[int64]int64, len(totals))
	for _, t := range totals {
		salesLookup[t.ProductID] = t.TotalSales
	}

	// 2. Inventario de la empresa con producto, bodega y proveedor opcional.
	rows, err := uc.alertRepo.ListCompanyStock(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}

	alerts := make([]dto.LowStockAlertDTO, 0)
	for _, row := range rows {
		totalSales := salesLookup[row.ProductID]
		if totalSales == 0 {
			// Sin ventas recientes no hay alerta, sin importar el nivel de stock.
			continue
		}

		threshold := alert.ThresholdFor(alert.Category(row.IsBundle))
		if row.Quantity >= threshold {
			continue
		}

		dailyAvg := alert.DailyAverage(totalSales)

		alerts = append(alerts, dto.LowStockAlertDTO{
			ProductID:         row.ProductID,
			ProductName:       row.ProductName,
			SKU:               row.SKU,
			WarehouseID:       row.WarehouseID,
			WarehouseName:     row.WarehouseName,
			CurrentStock:      row.Quantity,
			Threshold:         threshold,
			DaysUntilStockout: alert.DaysUntilStockout(row.Quantity, dailyAvg),
			Supplier: dto.SupplierInfo{
				ID:           row.SupplierID,
				Name:         row.SupplierName,
				ContactEmail: row.SupplierEmail,
			},
		})
	}

	return &dto.LowStockAlertsResponse{
		Alerts:      alerts,
		TotalAlerts: len(alerts),
	}, nil
}
