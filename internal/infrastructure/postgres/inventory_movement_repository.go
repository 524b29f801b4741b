package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación del diario de movimientos sobre PostgreSQL
// (usable con pool o tx).
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador del diario. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create guarda un asiento en inventory_movements.
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory_movements
			(id, transaction_id, storage_location_id, product_instance_id, type, quantity, unit_cost, total_cost, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.TransactionID, m.StorageLocationID, m.ProductInstanceID, m.Type,
		m.Quantity, m.UnitCost, m.TotalCost, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert inventory movement: %w", err)
	}
	return nil
}

// ListByLocation lista los asientos de una bodega, más recientes primero.
func (r *InventoryMovementRepo) ListByLocation(ctx context.Context, storageLocationID int64, limit, offset int) ([]*entity.InventoryMovement, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, transaction_id, storage_location_id, product_instance_id, type, quantity, unit_cost, total_cost, created_at, created_by
		FROM inventory_movements
		WHERE storage_location_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, storageLocationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory movements: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.StorageLocationID, &m.ProductInstanceID,
			&m.Type, &m.Quantity, &m.UnitCost, &m.TotalCost, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan inventory movement: %w", err)
		}
		out = append(out, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inventory movements: %w", err)
	}
	return out, nil
}
