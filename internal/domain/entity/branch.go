package entity

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
)

// AlertLevelEntry es el umbral mínimo configurado para un producto en una sucursal.
type AlertLevelEntry struct {
	ProductInstanceID int64
	Level             int64
	UpdatedAt         time.Time
}

// Branch representa una sucursal: agrupa bodegas y mantiene el registro de niveles
// de alerta por producto. El registro es de solo lectura para el libro de stock.
type Branch struct {
	ID          int64
	Name        string
	AlertLevels map[int64]int64 // producto -> nivel mínimo configurado
	Locations   []*StorageLocation
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SetAlertLevel registra o sobrescribe el nivel de alerta de un producto (upsert).
// Ids o niveles negativos fallan con ErrInvalidInput.
func (b *Branch) SetAlertLevel(productInstanceID, level int64) (AlertLevelEntry, error) {
	if productInstanceID < 0 || level < 0 {
		return AlertLevelEntry{}, domain.ErrInvalidInput
	}
	if b.AlertLevels == nil {
		b.AlertLevels = make(map[int64]int64)
	}
	b.AlertLevels[productInstanceID] = level
	return AlertLevelEntry{ProductInstanceID: productInstanceID, Level: level, UpdatedAt: time.Now()}, nil
}

// AlertLevel devuelve el umbral configurado para el producto y si existe registro.
func (b *Branch) AlertLevel(productInstanceID int64) (int64, bool) {
	level, ok := b.AlertLevels[productInstanceID]
	return level, ok
}
