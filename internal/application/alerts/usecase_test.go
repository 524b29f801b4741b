package alerts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/alerts"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

func newAlertUseCase(levels map[int64]int64, stock ...*entity.StoredProductInstance) (*alerts.AlertLevelUseCase, *fakeBranchRepo, *fakeNotificationRepo) {
	loc := &entity.StorageLocation{ID: 1, BranchID: 1, Stock: stock}
	locations := &fakeLocationRepo{locations: map[int64]*entity.StorageLocation{1: loc}}
	branches := &fakeBranchRepo{
		branch:    &entity.Branch{ID: 1, Name: "Sucursal Centro", AlertLevels: levels},
		locations: locations,
	}
	notifications := &fakeNotificationRepo{}
	return alerts.NewAlertLevelUseCase(branches, notifications), branches, notifications
}

func TestSetAlertLevel_PersisteElUmbral(t *testing.T) {
	uc, branches, _ := newAlertUseCase(map[int64]int64{})

	entry, err := uc.SetAlertLevel(context.Background(), 1, 42, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(42), entry.ProductInstanceID)
	assert.Equal(t, int64(15), entry.Level)

	require.Len(t, branches.upserts, 1)
	assert.Equal(t, int64(15), branches.upserts[0].Level)
	level, ok := branches.branch.AlertLevel(42)
	assert.True(t, ok)
	assert.Equal(t, int64(15), level)
}

func TestSetAlertLevel_SucursalInexistente(t *testing.T) {
	uc, _, _ := newAlertUseCase(map[int64]int64{})

	_, err := uc.SetAlertLevel(context.Background(), 99, 42, 15)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetAlertLevel_NivelNegativo(t *testing.T) {
	uc, branches, _ := newAlertUseCase(map[int64]int64{})

	_, err := uc.SetAlertLevel(context.Background(), 1, 42, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, branches.upserts)
}

func TestGetLowStockStatus_EvaluaContraElUmbral(t *testing.T) {
	uc, _, _ := newAlertUseCase(map[int64]int64{42: 15},
		&entity.StoredProductInstance{ProductInstanceID: 42, Quantity: 10})

	st, err := uc.GetLowStockStatus(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.True(t, st.IsLow)
	assert.Equal(t, int64(10), st.CurrentLevel)
	assert.Equal(t, int64(15), st.Threshold)
}

func TestGetLowStockStatus_SucursalInexistente(t *testing.T) {
	uc, _, _ := newAlertUseCase(nil)

	_, err := uc.GetLowStockStatus(context.Background(), 99, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListLowStock_SoloProductosBajosOrdenados(t *testing.T) {
	uc, _, _ := newAlertUseCase(map[int64]int64{5: 10, 3: 10, 8: 1},
		&entity.StoredProductInstance{ProductInstanceID: 3, Quantity: 2},
		&entity.StoredProductInstance{ProductInstanceID: 5, Quantity: 4},
		&entity.StoredProductInstance{ProductInstanceID: 8, Quantity: 9},
	)

	low, err := uc.ListLowStock(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, int64(3), low[0].ProductInstanceID)
	assert.Equal(t, int64(5), low[1].ProductInstanceID)
}

func TestListNotifications_Delega(t *testing.T) {
	uc, _, notifications := newAlertUseCase(nil)
	notifications.batches = append(notifications.batches, []*entity.Notification{
		{ID: "n-1", Message: "Stock bajo", CreatedAt: time.Now()},
	})

	list, err := uc.ListNotifications(context.Background(), 1, 20, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "n-1", list[0].ID)
}
