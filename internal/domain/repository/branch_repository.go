package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// BranchRepository define el puerto de persistencia para Branch (DIP).
type BranchRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Branch, error)
	// GetWithLocations carga la sucursal con su registro de niveles de alerta y
	// todas sus bodegas con stock (para la agregación a nivel sucursal).
	GetWithLocations(ctx context.Context, id int64) (*entity.Branch, error)
	UpsertAlertLevel(ctx context.Context, branchID int64, entry entity.AlertLevelEntry) error
}
