package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Almacen-api/internal/application/alerts"
)

var _ alerts.AlertCooldown = (*Cooldown)(nil)

// Cooldown suprime alertas repetidas por (sucursal, producto) usando
// SET NX con expiración: la primera adquisición dentro de la ventana gana.
type Cooldown struct {
	rdb *redis.Client
}

// NewCooldown construye el supresor sobre un cliente ya conectado.
func NewCooldown(rdb *redis.Client) *Cooldown {
	return &Cooldown{rdb: rdb}
}

// Acquire reserva la ventana de alerta. Devuelve true si la clave no existía
// (la alerta puede enviarse). Con ventana <= 0 la supresión está deshabilitada.
func (c *Cooldown) Acquire(ctx context.Context, branchID, productInstanceID int64, window time.Duration) (bool, error) {
	if window <= 0 {
		return true, nil
	}
	key := fmt.Sprintf("lowstock:%d:%d", branchID, productInstanceID)
	ok, err := c.rdb.SetNX(ctx, key, 1, window).Result()
	if err != nil {
		return false, fmt.Errorf("adquirir cooldown %s: %w", key, err)
	}
	return ok, nil
}
