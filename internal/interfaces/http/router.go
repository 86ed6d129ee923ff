package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/softshop-api/internal/application/auth"
	"github.com/jhoicas/softshop-api/internal/application/checkout"
	"github.com/jhoicas/softshop-api/internal/application/usecase"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	CartUC     *usecase.CartUseCase
	CheckoutUC *checkout.UseCase
	OrderUC    *usecase.OrderUseCase
	VendorUC   *usecase.VendorUseCase
	UserUC     *usecase.UserUseCase
	SettingUC  *usecase.SettingUseCase
	StatsUC    *usecase.StatsUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (público)
	catalogHandler := NewCatalogHandler(deps.ProductUC)
	api.Get("/categories", catalogHandler.Categories)
	products := api.Group("/products")
	products.Get("/", catalogHandler.List)
	products.Get("/:id", catalogHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token). El gate de mantenimiento
	// bloquea escrituras de no-admins mientras maintenance_mode esté activo.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), MaintenanceGate(deps.SettingUC))

	// Carrito (comprador)
	cart := protected.Group("/cart", RequireRole(entity.RoleUser))
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Get("/", cartHandler.Get)
	cart.Post("/", cartHandler.Add)
	cart.Delete("/", cartHandler.Clear)
	cart.Patch("/:productId", cartHandler.SetQuantity)
	cart.Delete("/:productId", cartHandler.Remove)

	// Checkout y órdenes
	orderHandler := NewOrderHandler(deps.CheckoutUC, deps.OrderUC)
	orders := protected.Group("/orders")
	orders.Get("/", RequireRole(entity.RoleUser), orderHandler.ListMine)
	orders.Post("/checkout", RequireRole(entity.RoleUser), orderHandler.Checkout)
	orders.Post("/rate", RequireRole(entity.RoleUser), orderHandler.Rate)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/receipt", orderHandler.Receipt)
	orders.Post("/:id/cancel", RequireRole(entity.RoleUser), orderHandler.Cancel)

	// Panel del vendedor
	vendor := protected.Group("/vendor", RequireRole(entity.RoleVendor))
	vendorHandler := NewVendorHandler(deps.VendorUC, deps.ProductUC, deps.OrderUC)
	vendor.Get("/profile", vendorHandler.GetProfile)
	vendor.Put("/profile", vendorHandler.UpdateProfile)
	vendor.Get("/products", vendorHandler.ListProducts)
	vendor.Post("/products", vendorHandler.CreateProduct)
	vendor.Put("/products/:id", vendorHandler.UpdateProduct)
	vendor.Delete("/products/:id", vendorHandler.DeleteProduct)
	vendor.Get("/orders", vendorHandler.ListOrders)

	// Panel de administración
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.UserUC, deps.VendorUC, deps.ProductUC, deps.OrderUC, deps.SettingUC, deps.StatsUC)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Patch("/users/:id/status", adminHandler.SetUserStatus)
	admin.Get("/vendors", adminHandler.ListVendors)
	admin.Patch("/vendors/:id/approval", adminHandler.SetVendorApproval)
	admin.Delete("/products/:id", adminHandler.DeleteProduct)
	admin.Get("/orders", adminHandler.ListOrders)
	admin.Get("/settings", adminHandler.GetSettings)
	admin.Patch("/settings", adminHandler.UpdateSettings)
	admin.Get("/stats", adminHandler.Stats)
}
