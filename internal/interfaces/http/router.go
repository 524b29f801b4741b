package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/alerts"
	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReceiveStock *inventory.ReceiveStockUseCase
	AlertUC      *alerts.AlertLevelUseCase
	AuthUC       *auth.AuthUseCase
	MovementRepo repository.InventoryMovementRepository
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Recepciones y diario (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.ReceiveStock, deps.MovementRepo)
	invGroup.Post("/receipts", inventoryHandler.RegisterReceipt)
	invGroup.Get("/locations/:id/movements", inventoryHandler.ListMovements)

	// Niveles de alerta y stock bajo (protegido)
	branches := protected.Group("/branches")
	alertHandler := NewAlertHandler(deps.AlertUC)
	branches.Put("/:id/alert-levels", RequireRole(entity.RoleAdmin, entity.RoleGerente), alertHandler.SetAlertLevel)
	branches.Get("/:id/low-stock", alertHandler.ListLowStock)
	branches.Get("/:id/low-stock/:productId", alertHandler.GetLowStockStatus)
	branches.Get("/:id/notifications", alertHandler.ListNotifications)

	// Notificaciones (protegido)
	notifications := protected.Group("/notifications")
	notifications.Post("/:id/read", alertHandler.MarkNotificationRead)
}
