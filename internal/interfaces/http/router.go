package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cortes-stock/internal/application/auth"
	"github.com/tu-usuario/cortes-stock/internal/application/cutting"
	"github.com/tu-usuario/cortes-stock/internal/application/stock"
	"github.com/tu-usuario/cortes-stock/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockSvc  *stock.Service
	CuttingUC *cutting.UseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
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

	// Stock (protegido). Inicializar/ajustar/eliminar: admin u operario.
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockSvc)
	stockGroup.Post("/", RequireRole(entity.RoleAdmin, entity.RoleOperario), stockHandler.Initialize)
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Get("/:id", stockHandler.GetByID)
	stockGroup.Post("/:id/adjust", RequireRole(entity.RoleAdmin, entity.RoleOperario), stockHandler.Adjust)
	stockGroup.Get("/:id/events", stockHandler.ListEvents)
	stockGroup.Get("/:id/reconcile", RequireRole(entity.RoleAdmin), stockHandler.Reconcile)
	stockGroup.Delete("/:id", RequireRole(entity.RoleAdmin), stockHandler.Delete)

	// Órdenes de corte (protegido)
	orders := protected.Group("/cutting-orders")
	orderHandler := NewCuttingOrderHandler(deps.CuttingUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/assign", RequireRole(entity.RoleAdmin, entity.RoleVendedor), orderHandler.Assign)
	orders.Post("/:id/start", RequireRole(entity.RoleAdmin, entity.RoleOperario), orderHandler.Start)
	orders.Post("/:id/complete", RequireRole(entity.RoleAdmin, entity.RoleOperario), orderHandler.Complete)
	orders.Post("/:id/cancel", orderHandler.Cancel)
}
