package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Almacen-api/internal/application/alerts"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

var _ alerts.NotificationPublisher = (*Publisher)(nil)

// Publisher publica notificaciones por canal de Redis (pub/sub).
// Los suscriptores (gateway websocket, workers) se enganchan al canal del grupo.
type Publisher struct {
	rdb *redis.Client
}

// NewPublisher construye el publicador sobre un cliente ya conectado.
func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

type publishedNotification struct {
	ID        string `json:"id"`
	BranchID  *int64 `json:"branch_id,omitempty"`
	Message   string `json:"message"`
	Target    string `json:"target"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}

// Publish serializa el lote y lo publica en el canal del grupo destino.
func (p *Publisher) Publish(ctx context.Context, group string, batch []*entity.Notification) error {
	if len(batch) == 0 {
		return nil
	}
	out := make([]publishedNotification, 0, len(batch))
	for _, n := range batch {
		out = append(out, publishedNotification{
			ID:        n.ID,
			BranchID:  n.BranchID,
			Message:   n.Message,
			Target:    n.Target,
			Type:      n.Type,
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	payload, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("serializar notificaciones: %w", err)
	}
	if err := p.rdb.Publish(ctx, group, payload).Err(); err != nil {
		return fmt.Errorf("publicar en canal %s: %w", group, err)
	}
	return nil
}
