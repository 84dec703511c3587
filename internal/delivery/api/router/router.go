// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"autohub/config"
	"autohub/internal/delivery/api/middleware"
	"autohub/internal/delivery/api/router/handler"
	"autohub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadPath is the multipart upload route; it bypasses the global body limit.
const UploadPath = "/api/v1/uploads"

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	ProfileHandler     *handler.ProfileHandler
	CatalogHandler     *handler.CatalogHandler
	InventoryHandler   *handler.InventoryHandler
	OrderHandler       *handler.OrderHandler
	AppointmentHandler *handler.AppointmentHandler
	ReviewHandler      *handler.ReviewHandler
	DashboardHandler   *handler.DashboardHandler
	UploadHandler      *handler.UploadHandler
	WatchHandler       *handler.WatchHandler
	DiagnosticsHandler *handler.DiagnosticsHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	profileHandler     *handler.ProfileHandler
	catalogHandler     *handler.CatalogHandler
	inventoryHandler   *handler.InventoryHandler
	orderHandler       *handler.OrderHandler
	appointmentHandler *handler.AppointmentHandler
	reviewHandler      *handler.ReviewHandler
	dashboardHandler   *handler.DashboardHandler
	uploadHandler      *handler.UploadHandler
	watchHandler       *handler.WatchHandler
	diagnostics        *handler.DiagnosticsHandler
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		profileHandler:     params.ProfileHandler,
		catalogHandler:     params.CatalogHandler,
		inventoryHandler:   params.InventoryHandler,
		orderHandler:       params.OrderHandler,
		appointmentHandler: params.AppointmentHandler,
		reviewHandler:      params.ReviewHandler,
		dashboardHandler:   params.DashboardHandler,
		uploadHandler:      params.UploadHandler,
		watchHandler:       params.WatchHandler,
		diagnostics:        params.DiagnosticsHandler,
		authMiddleware:     params.AuthMiddleware,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public images
	e.GET("/images/*", r.uploadHandler.ServeImage)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.userHandler.SignUp)
		authGroup.POST("/signin", r.userHandler.SignIn)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/signout", r.userHandler.SignOut)
		authGroup.POST("/password-reset", r.userHandler.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", r.userHandler.ResetPassword)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	ownerOnly := r.authMiddleware.RequireRole(entity.RoleShopOwner)

	meGroup := apiV1.Group("/me")
	{
		meGroup.GET("", r.userHandler.Me)
		meGroup.PUT("/password", r.userHandler.UpdatePassword)
		meGroup.PUT("/name", r.userHandler.UpdateDisplayName)
		meGroup.GET("/profile", r.profileHandler.GetProfile)
		meGroup.PUT("/profile", r.profileHandler.SaveProfile)
		meGroup.POST("/become-shop-owner", r.profileHandler.BecomeShopOwner)
		meGroup.PUT("/push-token", r.profileHandler.UpdatePushToken)
		meGroup.GET("/orders", r.orderHandler.ListCustomerOrders)
		meGroup.GET("/appointments", r.appointmentHandler.ListCustomerAppointments)
		meGroup.GET("/activity", r.dashboardHandler.CustomerActivity)
	}

	// Catalog browsing
	shopsGroup := apiV1.Group("/shops")
	{
		shopsGroup.GET("", r.catalogHandler.ListShops)
		shopsGroup.GET("/:id", r.catalogHandler.GetShop)
		shopsGroup.GET("/:id/services", r.catalogHandler.ListServices)
		shopsGroup.GET("/:id/reviews", r.reviewHandler.ListShopReviews)
		shopsGroup.GET("/:id/rating", r.reviewHandler.ShopRating)
		shopsGroup.POST("", r.catalogHandler.CreateShop, ownerOnly)
		shopsGroup.PUT("/:id", r.catalogHandler.UpdateShop, ownerOnly)
		shopsGroup.DELETE("/:id", r.catalogHandler.DeleteShop, ownerOnly)
	}

	servicesGroup := apiV1.Group("/services")
	{
		servicesGroup.GET("/:id", r.catalogHandler.GetService)
		servicesGroup.POST("", r.catalogHandler.CreateService, ownerOnly)
		servicesGroup.PUT("/:id", r.catalogHandler.UpdateService, ownerOnly)
		servicesGroup.DELETE("/:id", r.catalogHandler.DeleteService, ownerOnly)
	}

	partsGroup := apiV1.Group("/spare-parts")
	{
		partsGroup.GET("", r.catalogHandler.SearchSpareParts)
		partsGroup.GET("/:id", r.catalogHandler.GetSparePart)
		partsGroup.POST("", r.catalogHandler.CreateSparePart, ownerOnly)
		partsGroup.PUT("/:id", r.catalogHandler.UpdateSparePart, ownerOnly)
		partsGroup.DELETE("/:id", r.catalogHandler.DeleteSparePart, ownerOnly)
		partsGroup.POST("/:id/decrease", r.inventoryHandler.DecreaseQuantity, ownerOnly)
		partsGroup.POST("/:id/restore", r.inventoryHandler.RestoreQuantity, ownerOnly)
	}

	// Orders; the usecase decides whether the caller is the customer or the shop
	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.POST("/:id/actions", r.orderHandler.TransitionOrder)
		ordersGroup.PUT("/:id/status", r.orderHandler.SetOrderStatus)
	}

	appointmentsGroup := apiV1.Group("/appointments")
	{
		appointmentsGroup.POST("", r.appointmentHandler.Book)
		appointmentsGroup.GET("/:id", r.appointmentHandler.GetAppointment)
		appointmentsGroup.POST("/:id/actions", r.appointmentHandler.TransitionAppointment)
		appointmentsGroup.PUT("/:id/status", r.appointmentHandler.SetAppointmentStatus)
		appointmentsGroup.GET("/:id/bill", r.appointmentHandler.Bill)
		appointmentsGroup.GET("/:id/orders", r.orderHandler.ListBookingOrders)
	}

	reviewsGroup := apiV1.Group("/reviews")
	{
		reviewsGroup.POST("", r.reviewHandler.Submit)
		reviewsGroup.GET("/items/:id/exists", r.reviewHandler.ReviewExists)
		reviewsGroup.GET("/items/:id/rating", r.reviewHandler.ItemRating)
	}

	// Shop owner workspace
	myShopGroup := apiV1.Group("/my-shop")
	myShopGroup.Use(ownerOnly)
	{
		myShopGroup.GET("/dashboard", r.dashboardHandler.Summary)
		myShopGroup.GET("/activity", r.dashboardHandler.ShopActivity)
		myShopGroup.GET("/orders", r.orderHandler.ListShopOrders)
		myShopGroup.POST("/orders", r.orderHandler.CreateManualOrder)
		myShopGroup.GET("/appointments", r.appointmentHandler.ListShopAppointments)
		myShopGroup.POST("/appointments", r.appointmentHandler.CreateManual)
	}

	apiV1.POST("/uploads", r.uploadHandler.UploadImage)
	apiV1.GET("/watch/:stream", r.watchHandler.Watch)
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.GET("/public", r.diagnostics.Ping)
	testGroup.GET("/auth", r.diagnostics.WhoAmI, r.authMiddleware.Authenticate)
}
