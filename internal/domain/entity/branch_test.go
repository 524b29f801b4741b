package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

func TestSetAlertLevel_RegistraYSobrescribe(t *testing.T) {
	b := &entity.Branch{ID: 1}

	e, err := b.SetAlertLevel(42, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(42), e.ProductInstanceID)
	assert.Equal(t, int64(15), e.Level)

	level, ok := b.AlertLevel(42)
	require.True(t, ok)
	assert.Equal(t, int64(15), level)

	// Upsert: una segunda escritura sobrescribe el umbral.
	_, err = b.SetAlertLevel(42, 20)
	require.NoError(t, err)
	level, _ = b.AlertLevel(42)
	assert.Equal(t, int64(20), level)
}

func TestSetAlertLevel_CeroEsValido(t *testing.T) {
	b := &entity.Branch{ID: 1}
	_, err := b.SetAlertLevel(42, 0)
	require.NoError(t, err)

	level, ok := b.AlertLevel(42)
	assert.True(t, ok)
	assert.Equal(t, int64(0), level)
}

func TestSetAlertLevel_NegativosSonError(t *testing.T) {
	b := &entity.Branch{ID: 1}

	_, err := b.SetAlertLevel(-1, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = b.SetAlertLevel(42, -5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, ok := b.AlertLevel(42)
	assert.False(t, ok, "una escritura inválida no debe registrar nada")
}

func TestAlertLevel_SinRegistro(t *testing.T) {
	b := &entity.Branch{ID: 1}
	level, ok := b.AlertLevel(999)
	assert.False(t, ok)
	assert.Equal(t, int64(0), level)
}

func TestBranchGroup_Formato(t *testing.T) {
	assert.Equal(t, "BranchGroup_7", entity.BranchGroup(7))
}
