package inventory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/alerts"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
)

// ReceiveFromRequest adapta el request HTTP al caso de uso ReceiveStock(ctx, ReceiptInput).
// Usar desde handlers HTTP que tengan userID y dto.RegisterReceiptRequest.
func (uc *ReceiveStockUseCase) ReceiveFromRequest(ctx context.Context, userID string, in dto.RegisterReceiptRequest) (*alerts.Outcome, error) {
	input := ReceiptInput{
		UserID:            userID,
		StorageLocationID: in.StorageLocationID,
		Entries:           make([]EntryInput, 0, len(in.Entries)),
	}
	for _, e := range in.Entries {
		entry := EntryInput{
			ProductInstanceID: e.ProductInstanceID,
			Quantity:          e.Quantity,
			UnitCost:          e.UnitCost,
		}
		for _, u := range e.Units {
			entry.Units = append(entry.Units, UnitInput{
				SerialNumber: u.SerialNumber,
				Status:       u.Status,
				Expiration:   u.Expiration,
			})
		}
		input.Entries = append(input.Entries, entry)
	}
	return uc.ReceiveStock(ctx, input)
}
