package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/alerts"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/event"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ReceiveStockUseCase es el productor del flujo de recepción: valida las líneas
// contra el catálogo, enriquece cada entrada con rastreo y vida útil del producto
// y levanta el evento de cambio de cantidades que consume el notificador.
type ReceiveStockUseCase struct {
	productRepo repository.ProductRepository
	notifier    *alerts.QuantityChangeNotifier
}

// NewReceiveStockUseCase construye el caso de uso.
func NewReceiveStockUseCase(productRepo repository.ProductRepository, notifier *alerts.QuantityChangeNotifier) *ReceiveStockUseCase {
	return &ReceiveStockUseCase{productRepo: productRepo, notifier: notifier}
}

// UnitInput detalle de una unidad serializada recibida.
type UnitInput struct {
	SerialNumber string
	Status       string
	Expiration   *time.Time
}

// EntryInput una línea de recepción.
type EntryInput struct {
	ProductInstanceID int64
	Quantity          int64
	UnitCost          *decimal.Decimal
	Units             []UnitInput
}

// ReceiptInput entrada para registrar una recepción de stock en una bodega.
type ReceiptInput struct {
	UserID            string
	StorageLocationID int64
	Entries           []EntryInput
}

// ReceiveStock arma el evento QuantityChanged desde la recepción y lo entrega al
// notificador, que ejecuta el merge transaccional y el pipeline de alertas.
func (uc *ReceiveStockUseCase) ReceiveStock(ctx context.Context, input ReceiptInput) (*alerts.Outcome, error) {
	if len(input.Entries) == 0 {
		return nil, domain.ErrInvalidInput
	}

	entries := make([]entity.StockEntry, 0, len(input.Entries))
	for _, in := range input.Entries {
		if in.ProductInstanceID < 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(ctx, in.ProductInstanceID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		entry := entity.StockEntry{
			ProductInstanceID: in.ProductInstanceID,
			QuantityDelta:     in.Quantity,
			Tracked:           product.Tracked,
			UnitCost:          in.UnitCost,
		}
		// Vida útil: se copia del catálogo al momento del merge (solo rastreados).
		if product.Tracked && product.ShelfLifeDays != nil {
			days := *product.ShelfLifeDays
			entry.ShelfLifeDays = &days
		}
		for _, u := range in.Units {
			entry.Units = append(entry.Units, entity.StockUnit{
				SerialNumber: u.SerialNumber,
				Status:       u.Status,
				Expiration:   u.Expiration,
			})
		}
		entries = append(entries, entry)
	}

	evt := event.QuantityChanged{
		StorageLocationID: input.StorageLocationID,
		Entries:           entries,
		OccurredAt:        time.Now(),
		CorrelationID:     uuid.New().String(),
		TriggeredBy:       input.UserID,
	}
	return uc.notifier.Handle(ctx, evt)
}
