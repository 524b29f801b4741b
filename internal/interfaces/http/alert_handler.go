package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/alerts"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	domaininv "github.com/jhoicas/Almacen-api/internal/domain/inventory"
)

// AlertHandler maneja niveles de alerta, estado de stock bajo y notificaciones (protegido).
type AlertHandler struct {
	uc *alerts.AlertLevelUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.AlertLevelUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// SetAlertLevel godoc
// @Summary      Registrar o sobrescribir nivel de alerta
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la sucursal"
// @Param        body  body  dto.SetAlertLevelRequest  true  "product_instance_id, level"
// @Success      200   {object}  dto.AlertLevelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/branches/{id}/alert-levels [put]
func (h *AlertHandler) SetAlertLevel(c *fiber.Ctx) error {
	branchID, err := c.ParamsInt("id")
	if err != nil || branchID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de sucursal inválido"})
	}
	var in dto.SetAlertLevelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, err := h.uc.SetAlertLevel(c.Context(), int64(branchID), in.ProductInstanceID, in.Level)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto y nivel deben ser no negativos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.AlertLevelResponse{
		BranchID:          int64(branchID),
		ProductInstanceID: entry.ProductInstanceID,
		Level:             entry.Level,
		UpdatedAt:         entry.UpdatedAt,
	})
}

// GetLowStockStatus godoc
// @Summary      Estado de stock bajo de un producto
// @Description  Suma el stock del producto en todas las bodegas de la sucursal y lo
//
//	compara contra el umbral registrado. Sin umbral nunca está bajo.
//
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id         path  int  true  "ID de la sucursal"
// @Param        productId  path  int  true  "ID del producto"
// @Success      200  {object}  dto.LowStockStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/branches/{id}/low-stock/{productId} [get]
func (h *AlertHandler) GetLowStockStatus(c *fiber.Ctx) error {
	branchID, err := c.ParamsInt("id")
	if err != nil || branchID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de sucursal inválido"})
	}
	productID, err := c.ParamsInt("productId")
	if err != nil || productID < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de producto inválido"})
	}
	status, err := h.uc.GetLowStockStatus(c.Context(), int64(branchID), int64(productID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toLowStockResponse(status))
}

// ListLowStock godoc
// @Summary      Productos bajos en stock de la sucursal
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la sucursal"
// @Success      200  {array}   dto.LowStockStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/branches/{id}/low-stock [get]
func (h *AlertHandler) ListLowStock(c *fiber.Ctx) error {
	branchID, err := c.ParamsInt("id")
	if err != nil || branchID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de sucursal inválido"})
	}
	statuses, err := h.uc.ListLowStock(c.Context(), int64(branchID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.LowStockStatusResponse, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, toLowStockResponse(st))
	}
	return c.JSON(fiber.Map{"total": len(out), "low_stock": out})
}

// ListNotifications godoc
// @Summary      Notificaciones de la sucursal
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id      path   int  true   "ID de la sucursal"
// @Param        limit   query  int  false  "Tamaño de página (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/branches/{id}/notifications [get]
func (h *AlertHandler) ListNotifications(c *fiber.Ctx) error {
	branchID, err := c.ParamsInt("id")
	if err != nil || branchID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de sucursal inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	list, err := h.uc.ListNotifications(c.Context(), int64(branchID), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			BranchID:  n.BranchID,
			Message:   n.Message,
			Target:    n.Target,
			Type:      n.Type,
			CreatedAt: n.CreatedAt,
			ReadAt:    n.ReadAt,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "notifications": out})
}

// MarkNotificationRead godoc
// @Summary      Marcar notificación como leída
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la notificación (UUID)"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id}/read [post]
func (h *AlertHandler) MarkNotificationRead(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de notificación requerido"})
	}
	if err := h.uc.MarkNotificationRead(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "notificación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "notificación marcada como leída"})
}

func toLowStockResponse(st domaininv.LowStockStatus) dto.LowStockStatusResponse {
	return dto.LowStockStatusResponse{
		ProductInstanceID: st.ProductInstanceID,
		IsLow:             st.IsLow,
		CurrentLevel:      st.CurrentLevel,
		Threshold:         st.Threshold,
	}
}
