package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockUnitInput detalle de una unidad serializada en una recepción.
type StockUnitInput struct {
	SerialNumber string     `json:"serial_number" validate:"required"`
	Status       string     `json:"status,omitempty"`
	Expiration   *time.Time `json:"expiration,omitempty"`
}

// ReceiptEntryInput una línea de la recepción: producto y delta de cantidad.
// tracked y shelf_life_days se resuelven desde el catálogo, no desde el request.
type ReceiptEntryInput struct {
	ProductInstanceID int64            `json:"product_instance_id" validate:"required,min=0"`
	Quantity          int64            `json:"quantity"`
	UnitCost          *decimal.Decimal `json:"unit_cost,omitempty"`
	Units             []StockUnitInput `json:"units,omitempty"`
}

// RegisterReceiptRequest body para POST /api/inventory/receipts.
type RegisterReceiptRequest struct {
	StorageLocationID int64               `json:"storage_location_id" validate:"required"`
	Entries           []ReceiptEntryInput `json:"entries" validate:"required,min=1"`
}

// StoredProductResponse fila del libro de stock en respuestas.
type StoredProductResponse struct {
	ProductInstanceID int64           `json:"product_instance_id"`
	Quantity          int64           `json:"quantity"`
	Tracked           bool            `json:"tracked"`
	ShelfLifeDays     *int            `json:"shelf_life_days,omitempty"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	Units             int             `json:"units"`
	AvailableUnits    int             `json:"available_units"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// MovementResponse asiento del diario de movimientos en respuestas.
type MovementResponse struct {
	ID                string          `json:"id"`
	TransactionID     string          `json:"transaction_id"`
	StorageLocationID int64           `json:"storage_location_id"`
	ProductInstanceID int64           `json:"product_instance_id"`
	Type              string          `json:"type"`
	Quantity          int64           `json:"quantity"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	CreatedAt         time.Time       `json:"created_at"`
	CreatedBy         string          `json:"created_by"`
}

// ReceiptResponse salida de una recepción aplicada.
type ReceiptResponse struct {
	StorageLocationID int64                   `json:"storage_location_id"`
	Skipped           bool                    `json:"skipped"`
	SkipReason        string                  `json:"skip_reason,omitempty"`
	Stock             []StoredProductResponse `json:"stock"`
	Notifications     int                     `json:"notifications"`
}
