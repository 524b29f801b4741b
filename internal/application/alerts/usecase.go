package alerts

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// AlertLevelUseCase administra el registro de niveles de alerta de una sucursal
// y expone las consultas de estado de stock bajo.
type AlertLevelUseCase struct {
	branchRepo       repository.BranchRepository
	notificationRepo repository.NotificationRepository
}

// NewAlertLevelUseCase construye el caso de uso.
func NewAlertLevelUseCase(branchRepo repository.BranchRepository, notificationRepo repository.NotificationRepository) *AlertLevelUseCase {
	return &AlertLevelUseCase{branchRepo: branchRepo, notificationRepo: notificationRepo}
}

// SetAlertLevel registra o sobrescribe el umbral mínimo de un producto en la
// sucursal (upsert). Ids o niveles negativos fallan con ErrInvalidInput.
func (uc *AlertLevelUseCase) SetAlertLevel(ctx context.Context, branchID, productInstanceID, level int64) (entity.AlertLevelEntry, error) {
	branch, err := uc.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		return entity.AlertLevelEntry{}, err
	}
	if branch == nil {
		return entity.AlertLevelEntry{}, domain.ErrNotFound
	}
	entry, err := branch.SetAlertLevel(productInstanceID, level)
	if err != nil {
		return entity.AlertLevelEntry{}, err
	}
	if err := uc.branchRepo.UpsertAlertLevel(ctx, branchID, entry); err != nil {
		return entity.AlertLevelEntry{}, err
	}
	return entry, nil
}

// GetLowStockStatus evalúa un producto contra el umbral de la sucursal, sumando
// el stock de todas sus bodegas. Sin umbral registrado nunca está bajo.
func (uc *AlertLevelUseCase) GetLowStockStatus(ctx context.Context, branchID, productInstanceID int64) (domaininv.LowStockStatus, error) {
	branch, err := uc.branchRepo.GetWithLocations(ctx, branchID)
	if err != nil {
		return domaininv.LowStockStatus{}, err
	}
	if branch == nil {
		return domaininv.LowStockStatus{}, domain.ErrNotFound
	}
	return domaininv.Evaluate(branch, productInstanceID), nil
}

// ListLowStock devuelve los productos monitoreados que están bajos en stock,
// ordenados por id de producto.
func (uc *AlertLevelUseCase) ListLowStock(ctx context.Context, branchID int64) ([]domaininv.LowStockStatus, error) {
	branch, err := uc.branchRepo.GetWithLocations(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	ids := make([]int64, 0, len(branch.AlertLevels))
	for id := range branch.AlertLevels {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return domaininv.LowOnly(domaininv.EvaluateBatch(branch, ids)), nil
}

// ListNotifications lista las notificaciones de la sucursal (más recientes primero).
func (uc *AlertLevelUseCase) ListNotifications(ctx context.Context, branchID int64, limit, offset int) ([]*entity.Notification, error) {
	return uc.notificationRepo.ListByBranch(ctx, branchID, limit, offset)
}

// MarkNotificationRead marca una notificación como leída.
func (uc *AlertLevelUseCase) MarkNotificationRead(ctx context.Context, id string) error {
	return uc.notificationRepo.MarkRead(ctx, id, time.Now())
}
