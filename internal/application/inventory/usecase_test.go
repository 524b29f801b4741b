package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/alerts"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// Fakes mínimos para armar el pipeline completo de recepción.

type memLocationRepo struct {
	loc *entity.StorageLocation
}

func (m *memLocationRepo) GetByID(_ context.Context, id int64) (*entity.StorageLocation, error) {
	if m.loc != nil && m.loc.ID == id {
		return m.loc, nil
	}
	return nil, nil
}

func (m *memLocationRepo) GetForUpdate(ctx context.Context, id int64) (*entity.StorageLocation, error) {
	return m.GetByID(ctx, id)
}

func (m *memLocationRepo) SaveStock(_ context.Context, _ *entity.StorageLocation) error { return nil }

func (m *memLocationRepo) ListByBranch(_ context.Context, branchID int64) ([]*entity.StorageLocation, error) {
	if m.loc != nil && m.loc.BranchID == branchID {
		return []*entity.StorageLocation{m.loc}, nil
	}
	return nil, nil
}

type memMovementRepo struct {
	created []*entity.InventoryMovement
}

func (m *memMovementRepo) Create(_ context.Context, mov *entity.InventoryMovement) error {
	m.created = append(m.created, mov)
	return nil
}

func (m *memMovementRepo) ListByLocation(_ context.Context, _ int64, _, _ int) ([]*entity.InventoryMovement, error) {
	return m.created, nil
}

type memProductRepo struct {
	products map[int64]*entity.ProductInstance
}

func (m *memProductRepo) GetByID(_ context.Context, id int64) (*entity.ProductInstance, error) {
	return m.products[id], nil
}

func (m *memProductRepo) ResolveNames(_ context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string)
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out[id] = p.Name
		}
	}
	return out, nil
}

func (m *memProductRepo) UpdateCost(_ context.Context, id int64, cost decimal.Decimal) error {
	if p, ok := m.products[id]; ok {
		p.Cost = cost
	}
	return nil
}

type memBranchRepo struct {
	branch    *entity.Branch
	locations *memLocationRepo
}

func (m *memBranchRepo) GetByID(_ context.Context, id int64) (*entity.Branch, error) {
	if m.branch != nil && m.branch.ID == id {
		return m.branch, nil
	}
	return nil, nil
}

func (m *memBranchRepo) GetWithLocations(ctx context.Context, id int64) (*entity.Branch, error) {
	branch, err := m.GetByID(ctx, id)
	if err != nil || branch == nil {
		return branch, err
	}
	branch.Locations, _ = m.locations.ListByBranch(ctx, id)
	return branch, nil
}

func (m *memBranchRepo) UpsertAlertLevel(_ context.Context, _ int64, _ entity.AlertLevelEntry) error {
	return nil
}

type memNotificationRepo struct {
	saved []*entity.Notification
}

func (m *memNotificationRepo) CreateBatch(_ context.Context, batch []*entity.Notification) error {
	m.saved = append(m.saved, batch...)
	return nil
}

func (m *memNotificationRepo) ListByBranch(_ context.Context, _ int64, _, _ int) ([]*entity.Notification, error) {
	return m.saved, nil
}

func (m *memNotificationRepo) MarkRead(_ context.Context, _ string, _ time.Time) error { return nil }

type memPublisher struct {
	published []*entity.Notification
}

func (m *memPublisher) Publish(_ context.Context, _ string, batch []*entity.Notification) error {
	m.published = append(m.published, batch...)
	return nil
}

type openCooldown struct{}

func (openCooldown) Acquire(_ context.Context, _, _ int64, _ time.Duration) (bool, error) {
	return true, nil
}

type directTxRunner struct {
	locations *memLocationRepo
	movements *memMovementRepo
	products  *memProductRepo
}

func (d *directTxRunner) Run(ctx context.Context, fn func(
	locationRepo repository.StorageLocationRepository,
	movementRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(d.locations, d.movements, d.products)
}

func newReceiveUseCase(products map[int64]*entity.ProductInstance, alertLevels map[int64]int64) (*inventory.ReceiveStockUseCase, *memLocationRepo, *memPublisher) {
	locations := &memLocationRepo{loc: &entity.StorageLocation{ID: 1, BranchID: 1}}
	movements := &memMovementRepo{}
	productRepo := &memProductRepo{products: products}
	branches := &memBranchRepo{
		branch:    &entity.Branch{ID: 1, AlertLevels: alertLevels},
		locations: locations,
	}
	publisher := &memPublisher{}

	notifier := alerts.NewQuantityChangeNotifier(
		&directTxRunner{locations: locations, movements: movements, products: productRepo},
		branches, &memNotificationRepo{}, productRepo, publisher, openCooldown{},
		0, logger.Nop(),
	)
	return inventory.NewReceiveStockUseCase(productRepo, notifier), locations, publisher
}

func TestReceiveStock_EnriqueceDesdeCatalogoYAplicaMerge(t *testing.T) {
	shelfLife := 90
	products := map[int64]*entity.ProductInstance{
		42: {ID: 42, SKU: "TEC-01", Name: "Teclado", Tracked: true, ShelfLifeDays: &shelfLife},
	}
	uc, locations, _ := newReceiveUseCase(products, nil)

	out, err := uc.ReceiveStock(context.Background(), inventory.ReceiptInput{
		UserID:            "user-1",
		StorageLocationID: 1,
		Entries: []inventory.EntryInput{{
			ProductInstanceID: 42,
			Quantity:          2,
			Units: []inventory.UnitInput{
				{SerialNumber: "SN-1"},
				{SerialNumber: "SN-2"},
			},
		}},
	})
	require.NoError(t, err)
	require.False(t, out.Skipped)

	row := locations.loc.Find(42)
	require.NotNil(t, row)
	assert.Equal(t, int64(2), row.Quantity)
	assert.True(t, row.Tracked, "el rastreo viene del catálogo, no del request")
	require.NotNil(t, row.ShelfLifeDays)
	assert.Equal(t, 90, *row.ShelfLifeDays)
	assert.Len(t, row.Units, 2)
}

func TestReceiveStock_ProductoInexistenteEnCatalogo(t *testing.T) {
	uc, _, _ := newReceiveUseCase(map[int64]*entity.ProductInstance{}, nil)

	_, err := uc.ReceiveStock(context.Background(), inventory.ReceiptInput{
		UserID:            "user-1",
		StorageLocationID: 1,
		Entries:           []inventory.EntryInput{{ProductInstanceID: 99, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceiveStock_SinEntradasEsError(t *testing.T) {
	uc, _, _ := newReceiveUseCase(map[int64]*entity.ProductInstance{}, nil)

	_, err := uc.ReceiveStock(context.Background(), inventory.ReceiptInput{
		UserID:            "user-1",
		StorageLocationID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La recepción que deja el stock bajo el umbral de la sucursal dispara la alerta.
func TestReceiveStock_DisparaAlertaDeStockBajo(t *testing.T) {
	products := map[int64]*entity.ProductInstance{
		42: {ID: 42, SKU: "TEC-01", Name: "Teclado"},
	}
	uc, _, publisher := newReceiveUseCase(products, map[int64]int64{42: 15})

	out, err := uc.ReceiveStock(context.Background(), inventory.ReceiptInput{
		UserID:            "user-1",
		StorageLocationID: 1,
		Entries:           []inventory.EntryInput{{ProductInstanceID: 42, Quantity: 10}},
	})
	require.NoError(t, err)

	require.Len(t, out.Notifications, 1)
	assert.Contains(t, out.Notifications[0].Message, "Teclado")
	assert.Len(t, publisher.published, 1)
}
