package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para el catálogo de productos.
// ResolveNames es la consulta por lote que usa el notificador para armar mensajes;
// un resultado parcial no es error (los faltantes se degradan al id crudo).
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.ProductInstance, error)
	ResolveNames(ctx context.Context, ids []int64) (map[int64]string, error)
	UpdateCost(ctx context.Context, id int64, cost decimal.Decimal) error
}
