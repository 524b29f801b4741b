package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/event"
	domaininv "github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// Razones de descarte observable de un evento (agregado inexistente al momento
// de procesarlo). El evento no se reintenta; el resultado queda tipado y logueado.
const (
	SkipReasonLocationNotFound = "storage_location_not_found"
	SkipReasonBranchNotFound   = "branch_not_found"
)

// Outcome es el resultado de procesar un evento de cambio de cantidades.
type Outcome struct {
	Skipped       bool
	SkipReason    string
	Stock         []*entity.StoredProductInstance
	Statuses      []domaininv.LowStockStatus
	Notifications []*entity.Notification
}

// QuantityChangeNotifier es el pipeline reactivo: consume un evento de cambio de
// cantidades, aplica el merge sobre la bodega en una transacción con bloqueo de
// fila, reevalúa el estado de stock bajo de los productos tocados y despacha las
// alertas al grupo de la sucursal. Sin estado entre invocaciones.
type QuantityChangeNotifier struct {
	txRunner         TxRunner
	branchRepo       repository.BranchRepository
	notificationRepo repository.NotificationRepository
	names            NameResolver
	publisher        NotificationPublisher
	cooldown         AlertCooldown
	cooldownWindow   time.Duration
	log              *logger.Logger
}

// NewQuantityChangeNotifier construye el notificador.
func NewQuantityChangeNotifier(
	txRunner TxRunner,
	branchRepo repository.BranchRepository,
	notificationRepo repository.NotificationRepository,
	names NameResolver,
	publisher NotificationPublisher,
	cooldown AlertCooldown,
	cooldownWindow time.Duration,
	log *logger.Logger,
) *QuantityChangeNotifier {
	return &QuantityChangeNotifier{
		txRunner:         txRunner,
		branchRepo:       branchRepo,
		notificationRepo: notificationRepo,
		names:            names,
		publisher:        publisher,
		cooldown:         cooldown,
		cooldownWindow:   cooldownWindow,
		log:              log,
	}
}

// Handle procesa un evento: merge transaccional, evaluación de stock bajo y
// despacho de notificaciones. Si el merge falla no se calcula ni envía nada.
// Bodega o sucursal inexistente produce un Outcome con Skipped (no error).
func (n *QuantityChangeNotifier) Handle(ctx context.Context, evt event.QuantityChanged) (*Outcome, error) {
	if len(evt.Entries) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := evt.OccurredAt
	if now.IsZero() {
		now = time.Now()
	}

	out := &Outcome{}
	var branchID int64

	err := n.txRunner.Run(ctx, func(
		locationRepo repository.StorageLocationRepository,
		movementRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila de la bodega: serialización por agregado del merge.
		loc, err := locationRepo.GetForUpdate(ctx, evt.StorageLocationID)
		if err != nil {
			return err
		}
		if loc == nil {
			out.Skipped = true
			out.SkipReason = SkipReasonLocationNotFound
			return nil
		}
		branchID = loc.BranchID

		// Snapshot previo por producto para el costo promedio ponderado.
		type prevState struct {
			qty  int64
			cost decimal.Decimal
		}
		prev := make(map[int64]prevState, len(evt.Entries))
		for _, id := range evt.ProductInstanceIDs() {
			if row := loc.Find(id); row != nil {
				prev[id] = prevState{qty: row.Quantity, cost: row.UnitCost}
			} else {
				prev[id] = prevState{cost: decimal.Zero}
			}
		}

		stock, err := loc.MergeIncoming(evt.Entries, now)
		if err != nil {
			return err
		}

		// Costo promedio por fila en entradas con costo unitario.
		for _, entry := range evt.Entries {
			if entry.UnitCost == nil || entry.QuantityDelta <= 0 {
				continue
			}
			row := loc.Find(entry.ProductInstanceID)
			p := prev[entry.ProductInstanceID]
			newCost := domaininv.CostCalculator(
				decimal.NewFromInt(p.qty), p.cost,
				decimal.NewFromInt(entry.QuantityDelta), *entry.UnitCost,
			)
			row.UnitCost = newCost
			prev[entry.ProductInstanceID] = prevState{qty: p.qty + entry.QuantityDelta, cost: newCost}
			if err := productRepo.UpdateCost(ctx, entry.ProductInstanceID, newCost); err != nil {
				return err
			}
		}

		if err := locationRepo.SaveStock(ctx, loc); err != nil {
			return err
		}

		// Diario: un asiento por entrada aplicada.
		txID := evt.CorrelationID
		if txID == "" {
			txID = uuid.New().String()
		}
		for _, entry := range evt.Entries {
			if err := movementRepo.Create(ctx, buildMovement(evt, entry, loc, txID, now)); err != nil {
				return err
			}
		}
		out.Stock = stock
		return nil
	})
	if err != nil {
		return nil, err
	}

	if out.Skipped {
		n.log.Warn().
			Int64("storage_location_id", evt.StorageLocationID).
			Str("reason", out.SkipReason).
			Msg("evento de cambio de cantidades descartado")
		return out, nil
	}

	// Agregación a nivel sucursal: todas las bodegas, estado post-merge.
	branch, err := n.branchRepo.GetWithLocations(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		out.Skipped = true
		out.SkipReason = SkipReasonBranchNotFound
		n.log.Warn().
			Int64("branch_id", branchID).
			Str("reason", out.SkipReason).
			Msg("merge persistido pero la sucursal no existe; sin notificaciones")
		return out, nil
	}

	out.Statuses = domaininv.EvaluateBatch(branch, evt.ProductInstanceIDs())
	low := domaininv.LowOnly(out.Statuses)
	if len(low) == 0 {
		return out, nil
	}

	low = n.applyCooldown(ctx, branch.ID, low)
	if len(low) == 0 {
		return out, nil
	}

	batch := n.buildNotifications(ctx, branch, low, now)
	if err := n.notificationRepo.CreateBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("guardar notificaciones: %w", err)
	}
	if err := n.publisher.Publish(ctx, entity.BranchGroup(branch.ID), batch); err != nil {
		return nil, fmt.Errorf("publicar notificaciones: %w", err)
	}
	out.Notifications = batch

	n.log.Info().
		Int64("branch_id", branch.ID).
		Int("alerts", len(batch)).
		Msg("alertas de stock bajo despachadas")
	return out, nil
}

// applyCooldown filtra los productos cuya alerta ya se envió dentro de la ventana.
// Si el cooldown falla, la alerta sale igual: alertar no depende del cache.
func (n *QuantityChangeNotifier) applyCooldown(ctx context.Context, branchID int64, low []domaininv.LowStockStatus) []domaininv.LowStockStatus {
	send := make([]domaininv.LowStockStatus, 0, len(low))
	for _, st := range low {
		ok, err := n.cooldown.Acquire(ctx, branchID, st.ProductInstanceID, n.cooldownWindow)
		if err != nil {
			n.log.Warn().Err(err).
				Int64("product_instance_id", st.ProductInstanceID).
				Msg("cooldown de alertas no disponible; se envía de todas formas")
			ok = true
		}
		if ok {
			send = append(send, st)
		}
	}
	return send
}

// buildNotifications arma una notificación por producto bajo, resolviendo nombres
// con degradación al id crudo cuando el catálogo no responde o responde parcial.
func (n *QuantityChangeNotifier) buildNotifications(ctx context.Context, branch *entity.Branch, low []domaininv.LowStockStatus, now time.Time) []*entity.Notification {
	ids := make([]int64, 0, len(low))
	for _, st := range low {
		ids = append(ids, st.ProductInstanceID)
	}
	names, err := n.names.ResolveNames(ctx, ids)
	if err != nil {
		n.log.Warn().Err(err).Msg("resolución de nombres falló; se usan ids crudos")
		names = nil
	}

	branchID := branch.ID
	batch := make([]*entity.Notification, 0, len(low))
	for _, st := range low {
		name, ok := names[st.ProductInstanceID]
		if !ok || name == "" {
			name = fmt.Sprintf("producto %d", st.ProductInstanceID)
		}
		batch = append(batch, &entity.Notification{
			ID:       uuid.New().String(),
			BranchID: &branchID,
			Message: fmt.Sprintf("Stock bajo: %s con nivel actual %d, nivel recomendado %d",
				name, st.CurrentLevel, st.Threshold),
			Target:    entity.TargetBranchManagers,
			Type:      entity.NotificationTypeAlert,
			CreatedAt: now,
		})
	}
	return batch
}

func buildMovement(evt event.QuantityChanged, entry entity.StockEntry, loc *entity.StorageLocation, txID string, now time.Time) *entity.InventoryMovement {
	movType := entity.MovementTypeADJUSTMENT
	switch {
	case entry.QuantityDelta > 0:
		movType = entity.MovementTypeIN
	case entry.QuantityDelta < 0:
		movType = entity.MovementTypeOUT
	}
	unitCost := decimal.Zero
	if entry.UnitCost != nil {
		unitCost = *entry.UnitCost
	} else if row := loc.Find(entry.ProductInstanceID); row != nil {
		unitCost = row.UnitCost
	}
	qty := decimal.NewFromInt(entry.QuantityDelta)
	return &entity.InventoryMovement{
		ID:                uuid.New().String(),
		TransactionID:     txID,
		StorageLocationID: loc.ID,
		ProductInstanceID: entry.ProductInstanceID,
		Type:              movType,
		Quantity:          entry.QuantityDelta,
		UnitCost:          unitCost,
		TotalCost:         qty.Mul(unitCost),
		CreatedAt:         now,
		CreatedBy:         evt.TriggeredBy,
	}
}
