package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// NotificationRepository define el puerto de persistencia para notificaciones.
type NotificationRepository interface {
	CreateBatch(ctx context.Context, batch []*entity.Notification) error
	ListByBranch(ctx context.Context, branchID int64, limit, offset int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id string, at time.Time) error
}
