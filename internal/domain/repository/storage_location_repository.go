package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// StorageLocationRepository define el puerto de persistencia del agregado bodega
// con su libro de stock. GetForUpdate es la serialización por agregado que exige
// el merge: bloquea la fila de la bodega durante la transacción del caller.
type StorageLocationRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.StorageLocation, error)
	GetForUpdate(ctx context.Context, id int64) (*entity.StorageLocation, error)
	// SaveStock persiste las filas del libro de stock y sus unidades nuevas como unidad.
	SaveStock(ctx context.Context, location *entity.StorageLocation) error
	ListByBranch(ctx context.Context, branchID int64) ([]*entity.StorageLocation, error)
}
