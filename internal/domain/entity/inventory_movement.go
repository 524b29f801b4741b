package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste
)

// InventoryMovement es el asiento del diario de inventario: un registro por entrada
// aplicada al libro de stock (positivo entrada, negativo salida).
type InventoryMovement struct {
	ID                string
	TransactionID     string
	StorageLocationID int64
	ProductInstanceID int64
	Type              string
	Quantity          int64
	UnitCost          decimal.Decimal
	TotalCost         decimal.Decimal
	CreatedAt         time.Time
	CreatedBy         string // UserID
}
