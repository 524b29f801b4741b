package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	q         Querier
	locations *StorageLocationRepo
}

// NewBranchRepository construye el adaptador de persistencia para sucursales.
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q, locations: NewStorageLocationRepository(q)}
}

// GetByID obtiene la sucursal con su registro de niveles de alerta, o nil si no existe.
func (r *BranchRepo) GetByID(ctx context.Context, id int64) (*entity.Branch, error) {
	query := `SELECT id, name, created_at, updated_at FROM branches WHERE id = $1`
	var b entity.Branch
	err := r.q.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	if err := r.loadAlertLevels(ctx, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// GetWithLocations carga la sucursal completa: niveles de alerta y todas sus
// bodegas con stock, para la agregación a nivel sucursal.
func (r *BranchRepo) GetWithLocations(ctx context.Context, id int64) (*entity.Branch, error) {
	branch, err := r.GetByID(ctx, id)
	if err != nil || branch == nil {
		return branch, err
	}
	branch.Locations, err = r.locations.ListByBranch(ctx, id)
	if err != nil {
		return nil, err
	}
	return branch, nil
}

// UpsertAlertLevel inserta o sobrescribe el nivel de alerta de un producto.
func (r *BranchRepo) UpsertAlertLevel(ctx context.Context, branchID int64, entry entity.AlertLevelEntry) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO branch_alert_levels (branch_id, product_instance_id, level, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (branch_id, product_instance_id)
		DO UPDATE SET level = EXCLUDED.level, updated_at = EXCLUDED.updated_at`,
		branchID, entry.ProductInstanceID, entry.Level, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert alert level: %w", err)
	}
	return nil
}

func (r *BranchRepo) loadAlertLevels(ctx context.Context, b *entity.Branch) error {
	rows, err := r.q.Query(ctx, `
		SELECT product_instance_id, level FROM branch_alert_levels WHERE branch_id = $1`, b.ID)
	if err != nil {
		return fmt.Errorf("load alert levels: %w", err)
	}
	defer rows.Close()

	b.AlertLevels = make(map[int64]int64)
	for rows.Next() {
		var productID, level int64
		if err := rows.Scan(&productID, &level); err != nil {
			return fmt.Errorf("scan alert level: %w", err)
		}
		b.AlertLevels[productID] = level
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load alert levels: %w", err)
	}
	return nil
}
