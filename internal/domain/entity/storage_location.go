package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
)

// StockEntry es una línea entrante del merge: delta de cantidad para un producto,
// con su detalle de unidades serializadas cuando el producto es rastreado.
// La produce el flujo aguas arriba (recepción de compra, ajuste, venta).
type StockEntry struct {
	ProductInstanceID int64
	QuantityDelta     int64
	Tracked           bool
	ShelfLifeDays     *int
	UnitCost          *decimal.Decimal // costo unitario de la entrada (solo recepciones)
	Units             []StockUnit
}

// StorageLocation es la raíz de agregado del libro de stock de una bodega:
// a lo sumo una fila por producto; la colección se muta únicamente vía MergeIncoming.
// La exclusión entre merges concurrentes sobre la misma bodega es responsabilidad
// del caller (bloqueo de fila en la transacción que envuelve la operación).
type StorageLocation struct {
	ID       int64
	BranchID int64
	Name     string
	Stock    []*StoredProductInstance
}

// Find devuelve la fila de stock del producto, o nil si aún no existe en la bodega.
func (l *StorageLocation) Find(productInstanceID int64) *StoredProductInstance {
	for _, row := range l.Stock {
		if row.ProductInstanceID == productInstanceID {
			return row
		}
	}
	return nil
}

// MergeIncoming aplica un lote de entradas sobre el libro de stock de la bodega.
// Valida el lote completo antes de mutar nada: si una entrada falla, ninguna se
// aplica y la bodega queda intacta. Con lote vacío falla con ErrInvalidInput.
// Devuelve la lista completa de filas de la bodega (no solo las tocadas).
func (l *StorageLocation) MergeIncoming(entries []StockEntry, now time.Time) ([]*StoredProductInstance, error) {
	if len(entries) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Fase 1: validar todas las entradas contra el estado actual y entre sí.
	pendingQty := make(map[int64]int64, len(entries))
	pendingSerials := make(map[int64]map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.ProductInstanceID < 0 {
			return nil, domain.ErrInvalidInput
		}
		row := l.Find(entry.ProductInstanceID)
		if row == nil {
			// Fila nueva: la cantidad inicial acumulada del lote no puede ser negativa.
			if pendingQty[entry.ProductInstanceID]+entry.QuantityDelta < 0 {
				return nil, domain.ErrInvalidInput
			}
			row = &StoredProductInstance{ProductInstanceID: entry.ProductInstanceID, Tracked: entry.Tracked}
		}
		if err := row.validateEntry(entry); err != nil {
			return nil, err
		}
		// Seriales repetidos entre entradas del mismo lote también son duplicados.
		serials := pendingSerials[entry.ProductInstanceID]
		if serials == nil {
			serials = make(map[string]struct{})
			pendingSerials[entry.ProductInstanceID] = serials
		}
		for _, u := range entry.Units {
			if _, dup := serials[u.SerialNumber]; dup {
				return nil, domain.ErrDuplicateSerial
			}
			serials[u.SerialNumber] = struct{}{}
		}
		pendingQty[entry.ProductInstanceID] += entry.QuantityDelta
	}

	// Fase 2: aplicar. Ninguna entrada puede fallar ya.
	for _, entry := range entries {
		row := l.Find(entry.ProductInstanceID)
		if row == nil {
			created, err := newStoredProductInstance(entry, now)
			if err != nil {
				return nil, err
			}
			l.Stock = append(l.Stock, created)
			continue
		}
		if err := row.Apply(entry, now); err != nil {
			return nil, err
		}
	}
	return l.Stock, nil
}

// QuantityOf devuelve la cantidad actual del producto en la bodega (0 si no hay fila).
func (l *StorageLocation) QuantityOf(productInstanceID int64) int64 {
	if row := l.Find(productInstanceID); row != nil {
		return row.Quantity
	}
	return 0
}
