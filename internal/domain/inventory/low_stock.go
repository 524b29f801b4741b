package inventory

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// LowStockStatus es el resultado de evaluar un producto contra el registro de
// niveles de alerta de su sucursal.
type LowStockStatus struct {
	ProductInstanceID int64
	IsLow             bool
	CurrentLevel      int64
	Threshold         int64
}

// CurrentLevel suma la cantidad del producto en todas las bodegas de la sucursal
// (visibilidad a nivel sucursal, no por bodega).
func CurrentLevel(locations []*entity.StorageLocation, productInstanceID int64) int64 {
	var total int64
	for _, loc := range locations {
		total += loc.QuantityOf(productInstanceID)
	}
	return total
}

// Evaluate decide si el producto está bajo en stock para la sucursal.
// Sin nivel de alerta registrado el producto nunca está bajo ("no monitoreado",
// umbral 0). Está bajo estrictamente cuando umbral > nivel actual: el empate
// exacto con el umbral no es bajo.
func Evaluate(branch *entity.Branch, productInstanceID int64) LowStockStatus {
	current := CurrentLevel(branch.Locations, productInstanceID)
	threshold, registered := branch.AlertLevel(productInstanceID)
	if !registered {
		return LowStockStatus{ProductInstanceID: productInstanceID, CurrentLevel: current}
	}
	return LowStockStatus{
		ProductInstanceID: productInstanceID,
		IsLow:             threshold > current,
		CurrentLevel:      current,
		Threshold:         threshold,
	}
}

// EvaluateBatch evalúa varios productos y devuelve el estado de cada uno.
func EvaluateBatch(branch *entity.Branch, productInstanceIDs []int64) []LowStockStatus {
	statuses := make([]LowStockStatus, 0, len(productInstanceIDs))
	for _, id := range productInstanceIDs {
		statuses = append(statuses, Evaluate(branch, id))
	}
	return statuses
}

// LowOnly filtra los estados dejando solo los productos bajos en stock.
func LowOnly(statuses []LowStockStatus) []LowStockStatus {
	low := make([]LowStockStatus, 0, len(statuses))
	for _, st := range statuses {
		if st.IsLow {
			low = append(low, st)
		}
	}
	return low
}
