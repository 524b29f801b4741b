package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
)

// StoredProductInstance es la fila del libro de stock para un producto dentro de
// una bodega: la cantidad agregada es la cifra autoritativa; las unidades
// serializadas (solo productos rastreados) son la vista de detalle.
// Identidad única por (bodega, producto). Nunca se elimina: cantidad cero es válida.
type StoredProductInstance struct {
	ProductInstanceID int64
	Quantity          int64
	Tracked           bool
	ShelfLifeDays     *int            // vida útil en días, copiada del producto al momento del merge
	UnitCost          decimal.Decimal // costo promedio ponderado de la fila
	Units             []StockUnit     // solo productos rastreados
	UpdatedAt         time.Time
}

// newStoredProductInstance crea la fila en la primera recepción de un producto en la bodega.
// La cantidad inicial no puede ser negativa; después de la creación los deltas negativos
// son legales (consumo/ajuste) y esta capa no recorta en cero.
func newStoredProductInstance(entry StockEntry, now time.Time) (*StoredProductInstance, error) {
	if entry.QuantityDelta < 0 {
		return nil, domain.ErrInvalidInput
	}
	row := &StoredProductInstance{
		ProductInstanceID: entry.ProductInstanceID,
		Tracked:           entry.Tracked,
		UnitCost:          decimal.Zero,
		UpdatedAt:         now,
	}
	if err := row.Apply(entry, now); err != nil {
		return nil, err
	}
	return row, nil
}

// Apply aplica un delta de cantidad sobre la fila (merge aditivo, nunca sobrescribe).
// Si viene vida útil, gana la última escritura. Si vienen unidades se agregan al
// detalle; un serial ya existente falla con ErrDuplicateSerial y deja la fila intacta.
// Las unidades existentes no mencionadas no se tocan.
func (s *StoredProductInstance) Apply(entry StockEntry, now time.Time) error {
	if err := s.validateEntry(entry); err != nil {
		return err
	}
	s.Quantity += entry.QuantityDelta
	if entry.ShelfLifeDays != nil {
		v := *entry.ShelfLifeDays
		s.ShelfLifeDays = &v
	}
	for _, u := range entry.Units {
		status := u.Status
		if status == "" {
			status = UnitStatusAvailable
		}
		s.Units = append(s.Units, StockUnit{
			SerialNumber: u.SerialNumber,
			Status:       status,
			Expiration:   u.Expiration,
		})
	}
	s.UpdatedAt = now
	return nil
}

// validateEntry verifica la entrada sin mutar la fila (fase de validación del merge).
func (s *StoredProductInstance) validateEntry(entry StockEntry) error {
	if len(entry.Units) > 0 && !entry.Tracked {
		return domain.ErrInvalidInput
	}
	if len(entry.Units) == 0 {
		return nil
	}
	// Conciliación: el detalle entregado debe cuadrar con el delta agregado.
	if int64(len(entry.Units)) != entry.QuantityDelta {
		return domain.ErrInvalidInput
	}
	seen := make(map[string]struct{}, len(s.Units)+len(entry.Units))
	for _, existing := range s.Units {
		seen[existing.SerialNumber] = struct{}{}
	}
	for _, u := range entry.Units {
		if u.SerialNumber == "" {
			return domain.ErrInvalidInput
		}
		if _, dup := seen[u.SerialNumber]; dup {
			return domain.ErrDuplicateSerial
		}
		seen[u.SerialNumber] = struct{}{}
	}
	return nil
}

// AvailableUnits devuelve cuántas unidades del detalle están disponibles.
func (s *StoredProductInstance) AvailableUnits() int {
	n := 0
	for _, u := range s.Units {
		if u.Status == UnitStatusAvailable {
			n++
		}
	}
	return n
}
