package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/inventory"
)

func branchWithStock(levels map[int64]int64, stocks ...map[int64]int64) *entity.Branch {
	b := &entity.Branch{ID: 1, AlertLevels: levels}
	now := time.Now()
	for i, stock := range stocks {
		loc := &entity.StorageLocation{ID: int64(i + 1), BranchID: 1}
		for productID, qty := range stock {
			loc.Stock = append(loc.Stock, &entity.StoredProductInstance{
				ProductInstanceID: productID,
				Quantity:          qty,
				UpdatedAt:         now,
			})
		}
		b.Locations = append(b.Locations, loc)
	}
	return b
}

// Producto 42 con 10 unidades y umbral 15: está bajo.
func TestEvaluate_BajoUmbral(t *testing.T) {
	b := branchWithStock(map[int64]int64{42: 15}, map[int64]int64{42: 10})

	st := inventory.Evaluate(b, 42)
	assert.True(t, st.IsLow)
	assert.Equal(t, int64(10), st.CurrentLevel)
	assert.Equal(t, int64(15), st.Threshold)
}

// Mismo stock con umbral 10: el empate exacto no es bajo (estrictamente mayor).
func TestEvaluate_EmpateConUmbralNoEsBajo(t *testing.T) {
	b := branchWithStock(map[int64]int64{42: 10}, map[int64]int64{42: 10})

	st := inventory.Evaluate(b, 42)
	assert.False(t, st.IsLow)
	assert.Equal(t, int64(10), st.CurrentLevel)
	assert.Equal(t, int64(10), st.Threshold)
}

// Un producto sin nivel de alerta registrado nunca está bajo, ni con stock cero.
func TestEvaluate_SinRegistroNuncaEsBajo(t *testing.T) {
	b := branchWithStock(map[int64]int64{}, map[int64]int64{42: 0})

	st := inventory.Evaluate(b, 42)
	assert.False(t, st.IsLow)
	assert.Equal(t, int64(0), st.CurrentLevel)
	assert.Equal(t, int64(0), st.Threshold)
}

// La evaluación es a nivel sucursal: suma el stock de todas las bodegas.
func TestEvaluate_SumaTodasLasBodegas(t *testing.T) {
	b := branchWithStock(map[int64]int64{42: 15},
		map[int64]int64{42: 6},
		map[int64]int64{42: 5},
		map[int64]int64{42: 5},
	)

	st := inventory.Evaluate(b, 42)
	assert.False(t, st.IsLow, "6+5+5=16 supera el umbral 15")
	assert.Equal(t, int64(16), st.CurrentLevel)
}

func TestEvaluate_ProductoAusenteEnTodasLasBodegas(t *testing.T) {
	b := branchWithStock(map[int64]int64{42: 3}, map[int64]int64{})

	st := inventory.Evaluate(b, 42)
	assert.True(t, st.IsLow, "sin fila de stock el nivel actual es 0 < umbral 3")
	assert.Equal(t, int64(0), st.CurrentLevel)
}

func TestEvaluateBatch_YLowOnly(t *testing.T) {
	b := branchWithStock(
		map[int64]int64{1: 10, 2: 5, 3: 8},
		map[int64]int64{1: 4, 2: 9, 3: 8},
	)

	statuses := inventory.EvaluateBatch(b, []int64{1, 2, 3, 4})
	require.Len(t, statuses, 4)

	low := inventory.LowOnly(statuses)
	require.Len(t, low, 1)
	assert.Equal(t, int64(1), low[0].ProductInstanceID, "solo el producto 1 (4 < 10) está bajo")
}
