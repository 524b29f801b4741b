package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository construye el adaptador de persistencia para notificaciones.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

// CreateBatch persiste un lote de notificaciones en un solo round-trip (pgx.Batch).
func (r *NotificationRepo) CreateBatch(ctx context.Context, batch []*entity.Notification) error {
	if len(batch) == 0 {
		return nil
	}
	b := &pgx.Batch{}
	for _, n := range batch {
		b.Queue(`
			INSERT INTO notifications (id, branch_id, message, target, type, created_at, read_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			n.ID, n.BranchID, n.Message, n.Target, n.Type, n.CreatedAt, n.ReadAt,
		)
	}
	results := r.pool.SendBatch(ctx, b)
	defer results.Close()
	for range batch {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert notification: %w", err)
		}
	}
	return nil
}

// ListByBranch lista las notificaciones de la sucursal, más recientes primero.
func (r *NotificationRepo) ListByBranch(ctx context.Context, branchID int64, limit, offset int) ([]*entity.Notification, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, branch_id, message, target, type, created_at, read_at
		FROM notifications
		WHERE branch_id = $1 OR branch_id IS NULL
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var out []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.BranchID, &n.Message, &n.Target, &n.Type, &n.CreatedAt, &n.ReadAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return out, nil
}

// MarkRead marca una notificación como leída (idempotente: conserva la primera fecha).
func (r *NotificationRepo) MarkRead(ctx context.Context, id string, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE notifications SET read_at = COALESCE(read_at, $2) WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
