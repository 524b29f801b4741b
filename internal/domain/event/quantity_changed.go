package event

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// QuantityChanged es el evento de dominio que emite el productor que ejecutó un
// merge de cantidades (recepción de compra, ajuste o venta). Lo consume el
// notificador de cambios de cantidad para reevaluar el estado de stock bajo.
type QuantityChanged struct {
	StorageLocationID int64
	Entries           []entity.StockEntry
	OccurredAt        time.Time
	CorrelationID     string // trazabilidad entre productor, diario y notificaciones
	TriggeredBy       string // UserID del flujo que originó el cambio (vacío si sistema)
}

// ProductInstanceIDs devuelve los productos tocados por el evento, sin repetidos
// y en orden de aparición.
func (e QuantityChanged) ProductInstanceIDs() []int64 {
	seen := make(map[int64]struct{}, len(e.Entries))
	ids := make([]int64, 0, len(e.Entries))
	for _, entry := range e.Entries {
		if _, ok := seen[entry.ProductInstanceID]; ok {
			continue
		}
		seen[entry.ProductInstanceID] = struct{}{}
		ids = append(ids, entry.ProductInstanceID)
	}
	return ids
}
