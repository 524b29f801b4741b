package alerts

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el merge del libro de stock y su diario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		locationRepo repository.StorageLocationRepository,
		movementRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// NotificationPublisher publica un lote de notificaciones al grupo de transporte
// de una sucursal (pub/sub). Los consumidores del canal están fuera de este núcleo.
type NotificationPublisher interface {
	Publish(ctx context.Context, group string, batch []*entity.Notification) error
}

// AlertCooldown limita la repetición de alertas por (sucursal, producto).
// Acquire devuelve true si la alerta puede enviarse y reserva la ventana.
// Con ventana <= 0 siempre devuelve true (supresión deshabilitada).
type AlertCooldown interface {
	Acquire(ctx context.Context, branchID, productInstanceID int64, window time.Duration) (bool, error)
}

// NameResolver resuelve nombres legibles de productos para armar mensajes.
// Un resultado parcial no es error: los faltantes se degradan al id crudo.
type NameResolver interface {
	ResolveNames(ctx context.Context, ids []int64) (map[int64]string, error)
}
