package inventory

// StockoutEstimator estima cuántos días faltan para agotar una posición de
// stock. Es una heurística reemplazable (servicio de dominio), no un modelo de
// pronóstico: la fórmula por defecto es deliberadamente simple y el motor de
// alertas la recibe inyectada para poder sustituirla sin tocar el caso de uso.
type StockoutEstimator interface {
	DaysUntilStockout(currentStock int64) int64
}

// LinearDepletionEstimator asume una tasa de consumo diaria constante.
// DíasHastaAgotar = max(1, StockActual / TasaDiaria).
type LinearDepletionEstimator struct {
	DailyRate int64
}

// DaysUntilStockout aplica la fórmula lineal con piso en 1 día. Una tasa no
// positiva se trata como 1 unidad/día.
func (e LinearDepletionEstimator) DaysUntilStockout(currentStock int64) int64 {
	rate := e.DailyRate
	if rate <= 0 {
		rate = 1
	}
	days := currentStock / rate
	if days < 1 {
		days = 1
	}
	return days
}
