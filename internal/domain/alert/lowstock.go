package alert

// RecentSalesDays es la ventana fija de ventas recientes: los últimos 30 días
// terminando hoy, inclusivo en ambos extremos (sold_at >= hoy - 30 días).
const RecentSalesDays = 30

// Categorías de producto para efectos de umbral de stock.
const (
	CategoryStandard = "standard"
	CategoryBundle   = "bundle"
)

// umbral mínimo aceptable de stock por categoría.
var thresholdByCategory = map[string]int64{
	CategoryStandard: 20,
	CategoryBundle:   10,
}

// Category devuelve la categoría de umbral según el flag bundle del producto.
func Category(isBundle bool) string {
	if isBundle {
		return CategoryBundle
	}
	return CategoryStandard
}

// ThresholdFor devuelve el umbral de la categoría; categorías desconocidas
// caen al umbral estándar.
func ThresholdFor(category string) int64 {
	if t, ok := thresholdByCategory[category]; ok {
		return t
	}
	return thresholdByCategory[CategoryStandard]
}

// DailyAverage calcula el promedio diario de ventas sobre la ventana fija.
// El divisor es la longitud de la ventana, no la cantidad de días con ventas.
func DailyAverage(totalRecentSales int64) float64 {
	return float64(totalRecentSales) / float64(RecentSalesDays)
}

// DaysUntilStockout estima los días hasta quedarse sin stock al ritmo de venta actual
// (piso entero de cantidad / promedio diario). Devuelve nil si el promedio es cero:
// sin velocidad de venta no hay horizonte estimable.
func DaysUntilStockout(currentQty int64, dailyAvg float64) *int64 {
	if dailyAvg <= 0 {
		return nil
	}
	days := int64(float64(currentQty) / dailyAvg)
	return &days
}
