package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductInstance representa una variante de producto del catálogo (multi-bodega).
// Tracked indica si sus unidades se identifican por número de serie; la vida útil
// se copia a la fila de stock al momento del merge.
type ProductInstance struct {
	ID            int64
	SKU           string
	Name          string
	Tracked       bool
	ShelfLifeDays *int
	Cost          decimal.Decimal // costo promedio ponderado de referencia
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
