package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// InventoryMovementRepository define el puerto del diario de movimientos.
// Usado dentro de transacciones junto al libro de stock.
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	ListByLocation(ctx context.Context, storageLocationID int64, limit, offset int) ([]*entity.InventoryMovement, error)
}
