package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StorageLocationRepository = (*StorageLocationRepo)(nil)

// StorageLocationRepo implementación de StorageLocationRepository sobre PostgreSQL
// (usable con pool o tx).
type StorageLocationRepo struct {
	q Querier
}

// NewStorageLocationRepository construye el adaptador de bodegas. Pasar pool o tx (Querier).
func NewStorageLocationRepository(q Querier) *StorageLocationRepo {
	return &StorageLocationRepo{q: q}
}

// GetByID carga la bodega con su libro de stock completo, o nil si no existe.
func (r *StorageLocationRepo) GetByID(ctx context.Context, id int64) (*entity.StorageLocation, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate carga la bodega bloqueando su fila (SELECT FOR UPDATE): es la
// serialización por agregado que exige el merge concurrente.
func (r *StorageLocationRepo) GetForUpdate(ctx context.Context, id int64) (*entity.StorageLocation, error) {
	return r.get(ctx, id, true)
}

func (r *StorageLocationRepo) get(ctx context.Context, id int64, forUpdate bool) (*entity.StorageLocation, error) {
	query := `SELECT id, branch_id, name FROM storage_locations WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var loc entity.StorageLocation
	err := r.q.QueryRow(ctx, query, id).Scan(&loc.ID, &loc.BranchID, &loc.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get storage location: %w", err)
	}
	if err := r.loadStock(ctx, &loc, true); err != nil {
		return nil, err
	}
	return &loc, nil
}

// loadStock carga las filas del libro de stock; withUnits añade el detalle serializado.
func (r *StorageLocationRepo) loadStock(ctx context.Context, loc *entity.StorageLocation, withUnits bool) error {
	rows, err := r.q.Query(ctx, `
		SELECT product_instance_id, quantity, tracked, shelf_life_days, unit_cost, updated_at
		FROM stored_products WHERE storage_location_id = $1
		ORDER BY product_instance_id`, loc.ID)
	if err != nil {
		return fmt.Errorf("load stock: %w", err)
	}
	defer rows.Close()

	byProduct := make(map[int64]*entity.StoredProductInstance)
	for rows.Next() {
		var row entity.StoredProductInstance
		if err := rows.Scan(&row.ProductInstanceID, &row.Quantity, &row.Tracked,
			&row.ShelfLifeDays, &row.UnitCost, &row.UpdatedAt); err != nil {
			return fmt.Errorf("scan stored product: %w", err)
		}
		loc.Stock = append(loc.Stock, &row)
		byProduct[row.ProductInstanceID] = &row
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load stock: %w", err)
	}
	if !withUnits || len(loc.Stock) == 0 {
		return nil
	}

	unitRows, err := r.q.Query(ctx, `
		SELECT product_instance_id, serial_number, status, expiration
		FROM stock_units WHERE storage_location_id = $1
		ORDER BY product_instance_id, serial_number`, loc.ID)
	if err != nil {
		return fmt.Errorf("load stock units: %w", err)
	}
	defer unitRows.Close()

	for unitRows.Next() {
		var productID int64
		var u entity.StockUnit
		if err := unitRows.Scan(&productID, &u.SerialNumber, &u.Status, &u.Expiration); err != nil {
			return fmt.Errorf("scan stock unit: %w", err)
		}
		if row, ok := byProduct[productID]; ok {
			row.Units = append(row.Units, u)
		}
	}
	if err := unitRows.Err(); err != nil {
		return fmt.Errorf("load stock units: %w", err)
	}
	return nil
}

// SaveStock persiste las filas del libro de stock y sus unidades. Las unidades ya
// existentes se ignoran (el agregado garantiza que no hay seriales repetidos);
// una violación de unicidad concurrente se reporta como ErrDuplicateSerial.
func (r *StorageLocationRepo) SaveStock(ctx context.Context, location *entity.StorageLocation) error {
	for _, row := range location.Stock {
		_, err := r.q.Exec(ctx, `
			INSERT INTO stored_products
				(storage_location_id, product_instance_id, quantity, tracked, shelf_life_days, unit_cost, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (storage_location_id, product_instance_id)
			DO UPDATE SET quantity = EXCLUDED.quantity,
			              shelf_life_days = EXCLUDED.shelf_life_days,
			              unit_cost = EXCLUDED.unit_cost,
			              updated_at = EXCLUDED.updated_at`,
			location.ID, row.ProductInstanceID, row.Quantity, row.Tracked,
			row.ShelfLifeDays, row.UnitCost, row.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("upsert stored product: %w", err)
		}
		for _, u := range row.Units {
			_, err := r.q.Exec(ctx, `
				INSERT INTO stock_units
					(storage_location_id, product_instance_id, serial_number, status, expiration)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (storage_location_id, product_instance_id, serial_number) DO NOTHING`,
				location.ID, row.ProductInstanceID, u.SerialNumber, u.Status, u.Expiration,
			)
			if err != nil {
				if isUniqueViolation(err) {
					return domain.ErrDuplicateSerial
				}
				return fmt.Errorf("insert stock unit: %w", err)
			}
		}
	}
	return nil
}

// ListByBranch carga todas las bodegas de la sucursal con sus filas de stock
// (sin el detalle de unidades: los listados solo necesitan cantidades).
func (r *StorageLocationRepo) ListByBranch(ctx context.Context, branchID int64) ([]*entity.StorageLocation, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, branch_id, name FROM storage_locations
		WHERE branch_id = $1 ORDER BY id`, branchID)
	if err != nil {
		return nil, fmt.Errorf("list storage locations: %w", err)
	}
	defer rows.Close()

	var locations []*entity.StorageLocation
	for rows.Next() {
		var loc entity.StorageLocation
		if err := rows.Scan(&loc.ID, &loc.BranchID, &loc.Name); err != nil {
			return nil, fmt.Errorf("scan storage location: %w", err)
		}
		locations = append(locations, &loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list storage locations: %w", err)
	}
	for _, loc := range locations {
		if err := r.loadStock(ctx, loc, false); err != nil {
			return nil, err
		}
	}
	return locations, nil
}
