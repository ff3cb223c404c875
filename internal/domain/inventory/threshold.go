package inventory

// DefaultLowStockThreshold es el umbral de stock bajo cuando el producto no
// tiene uno configurado.
const DefaultLowStockThreshold int64 = 10

// EffectiveThreshold resuelve el umbral efectivo de un producto: el configurado
// si existe, si no el default de la plataforma. Política explícita de lectura,
// no un fallback dinámico por atributo.
func EffectiveThreshold(configured *int64) int64 {
	if configured == nil {
		return DefaultLowStockThreshold
	}
	return *configured
}
