package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/domain/inventory"
)

func TestCostCalculator_PromedioPonderado(t *testing.T) {
	// 10 unidades a $100 + 5 unidades a $130 = $110 promedio
	got := inventory.CostCalculator(
		decimal.NewFromInt(10), decimal.NewFromInt(100),
		decimal.NewFromInt(5), decimal.NewFromInt(130),
	)
	assert.True(t, got.Equal(decimal.NewFromInt(110)), "esperado 110, obtenido %s", got)
}

func TestCostCalculator_SinStockPrevio(t *testing.T) {
	got := inventory.CostCalculator(
		decimal.Zero, decimal.Zero,
		decimal.NewFromInt(8), decimal.NewFromFloat(12.5),
	)
	assert.True(t, got.Equal(decimal.NewFromFloat(12.5)))
}

func TestCostCalculator_DenominadorNoPositivo(t *testing.T) {
	got := inventory.CostCalculator(
		decimal.NewFromInt(5), decimal.NewFromInt(100),
		decimal.NewFromInt(-5), decimal.NewFromInt(50),
	)
	assert.True(t, got.Equal(decimal.Zero), "stock resultante cero no debe dividir")
}
