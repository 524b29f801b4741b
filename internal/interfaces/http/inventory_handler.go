package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/alerts"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// InventoryHandler maneja las recepciones de stock y el diario de movimientos (protegido).
type InventoryHandler struct {
	receive   *inventory.ReceiveStockUseCase
	movements repository.InventoryMovementRepository
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(receive *inventory.ReceiveStockUseCase, movements repository.InventoryMovementRepository) *InventoryHandler {
	return &InventoryHandler{receive: receive, movements: movements}
}

// RegisterReceipt godoc
// @Summary      Registrar recepción de stock
// @Description  Aplica un lote de entradas sobre una bodega (merge aditivo, atómico)
//
//	y dispara la evaluación de stock bajo de la sucursal.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterReceiptRequest  true  "storage_location_id y entries (delta, unit_cost opcional, units para rastreados)"
// @Success      201   {object}  dto.ReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/receipts [post]
func (h *InventoryHandler) RegisterReceipt(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.receive.ReceiveFromRequest(c.Context(), userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if errors.Is(err, domain.ErrDuplicateSerial) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_SERIAL", Message: "número de serie duplicado"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out.Skipped && out.SkipReason == alerts.SkipReasonLocationNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bodega no encontrada"})
	}
	return c.Status(fiber.StatusCreated).JSON(toReceiptResponse(in.StorageLocationID, out))
}

// ListMovements godoc
// @Summary      Diario de movimientos de una bodega
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path   int  true   "ID de la bodega"
// @Param        limit   query  int  false  "Tamaño de página (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/locations/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	locationID, err := c.ParamsInt("id")
	if err != nil || locationID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de bodega inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	list, err := h.movements.ListByLocation(c.Context(), int64(locationID), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovementResponse{
			ID:                m.ID,
			TransactionID:     m.TransactionID,
			StorageLocationID: m.StorageLocationID,
			ProductInstanceID: m.ProductInstanceID,
			Type:              m.Type,
			Quantity:          m.Quantity,
			UnitCost:          m.UnitCost,
			TotalCost:         m.TotalCost,
			CreatedAt:         m.CreatedAt,
			CreatedBy:         m.CreatedBy,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "movements": out})
}

func toReceiptResponse(locationID int64, out *alerts.Outcome) dto.ReceiptResponse {
	resp := dto.ReceiptResponse{
		StorageLocationID: locationID,
		Skipped:           out.Skipped,
		SkipReason:        out.SkipReason,
		Notifications:     len(out.Notifications),
	}
	for _, row := range out.Stock {
		resp.Stock = append(resp.Stock, toStoredProductResponse(row))
	}
	return resp
}

func toStoredProductResponse(row *entity.StoredProductInstance) dto.StoredProductResponse {
	return dto.StoredProductResponse{
		ProductInstanceID: row.ProductInstanceID,
		Quantity:          row.Quantity,
		Tracked:           row.Tracked,
		ShelfLifeDays:     row.ShelfLifeDays,
		UnitCost:          row.UnitCost,
		Units:             len(row.Units),
		AvailableUnits:    row.AvailableUnits(),
		UpdatedAt:         row.UpdatedAt,
	}
}
