package entity

import "time"

// Estados de una unidad serializada (value object conceptual).
// Las recepciones de compra solo producen unidades "available"; los demás estados
// los asignan los flujos de venta/ajuste. Estados desconocidos se preservan tal cual.
const (
	UnitStatusAvailable = "available"
	UnitStatusReserved  = "reserved"
	UnitStatusSold      = "sold"
	UnitStatusDamaged   = "damaged"
)

// StockUnit representa una unidad física serializada de un producto rastreado
// dentro de una bodega. El serial es único dentro de su fila de stock.
type StockUnit struct {
	SerialNumber string
	Status       string
	Expiration   *time.Time
}
