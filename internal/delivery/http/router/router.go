// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ledger/internal/delivery/http/middleware"
	"ledger/internal/delivery/http/router/handler"
	"ledger/internal/domain/permission"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	VehicleHandler  *handler.VehicleHandler
	PartsHandler    *handler.PartsHandler
	CustomerHandler *handler.CustomerHandler
	DealHandler     *handler.DealHandler
	ReportHandler   *handler.ReportHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	vehicleHandler  *handler.VehicleHandler
	partsHandler    *handler.PartsHandler
	customerHandler *handler.CustomerHandler
	dealHandler     *handler.DealHandler
	reportHandler   *handler.ReportHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		vehicleHandler:  params.VehicleHandler,
		partsHandler:    params.PartsHandler,
		customerHandler: params.CustomerHandler,
		dealHandler:     params.DealHandler,
		reportHandler:   params.ReportHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	auth := r.authMiddleware

	// Public inventory routes. Identify resolves an optional token so
	// staff tokens unlock the private search filters.
	publicGroup := e.Group("", auth.Identify)
	{
		publicGroup.GET("/vehicles", r.vehicleHandler.SearchVehicles)
		publicGroup.GET("/vehicles/counts", r.vehicleHandler.VehicleCounts)
		publicGroup.GET("/vehicles/:vin", r.vehicleHandler.GetVehicle)
		publicGroup.GET("/reference-data", r.vehicleHandler.ListReferenceData)
	}

	// Inventory routes that require authentication
	vehicleGroup := e.Group("/vehicles", auth.Authenticate)
	{
		vehicleGroup.POST("", r.vehicleHandler.AddVehicle, auth.Require(permission.OpAddVehicle))
		vehicleGroup.PUT("/:vin", r.vehicleHandler.UpdateVehicle, auth.Require(permission.OpUpdateVehicle))
		vehicleGroup.POST("/:vin/parts-orders", r.partsHandler.AddPartsOrder, auth.Require(permission.OpAddPartsOrder))
		vehicleGroup.POST("/:vin/sale", r.dealHandler.RecordSale, auth.Require(permission.OpRecordSale))
		vehicleGroup.POST("/:vin/purchase", r.dealHandler.RecordPurchase, auth.Require(permission.OpRecordPurchase))
		vehicleGroup.GET("/:vin/sale", r.dealHandler.GetSaleDetails, auth.Require(permission.OpViewDeal))
		vehicleGroup.GET("/:vin/purchase", r.dealHandler.GetPurchaseDetails, auth.Require(permission.OpViewDeal))
	}

	// Buying a vehicle creates the record and its purchase in one step.
	e.POST("/acquisitions", r.dealHandler.AcquireVehicle, auth.Authenticate, auth.Require(permission.OpAcquireVehicle))

	// Parts order routes
	partsGroup := e.Group("/parts-orders", auth.Authenticate)
	{
		partsGroup.PATCH("/:orderNumber/parts/:vendorPartsNumber", r.partsHandler.UpdatePartStatus, auth.Require(permission.OpUpdatePartStatus))
	}

	// Vendor routes
	vendorGroup := e.Group("/vendors", auth.Authenticate)
	{
		vendorGroup.POST("", r.partsHandler.AddVendor, auth.Require(permission.OpAddVendor))
		vendorGroup.GET("", r.partsHandler.ListVendors, auth.Require(permission.OpListVendors))
	}

	// Customer routes
	customerGroup := e.Group("/customers", auth.Authenticate)
	{
		customerGroup.POST("", r.customerHandler.AddCustomer, auth.Require(permission.OpAddCustomer))
		customerGroup.GET("", r.customerHandler.FindCustomer, auth.Require(permission.OpViewCustomer))
		customerGroup.GET("/identifiers", r.customerHandler.ListIdentifiers, auth.Require(permission.OpViewCustomer))
		customerGroup.GET("/:id", r.customerHandler.GetCustomer, auth.Require(permission.OpViewCustomer))
		customerGroup.PUT("/:id", r.customerHandler.UpdateCustomer, auth.Require(permission.OpUpdateCustomer))
		customerGroup.DELETE("/:id", r.customerHandler.DeleteCustomer, auth.Require(permission.OpDeleteCustomer))
	}

	// Management report routes
	reportGroup := e.Group("/reports", auth.Authenticate, auth.Require(permission.OpViewReports))
	{
		reportGroup.GET("/seller-history", r.reportHandler.SellerHistory)
		reportGroup.GET("/inventory-time", r.reportHandler.AverageInventoryTime)
		reportGroup.GET("/parts-statistics", r.reportHandler.PartsStatistics)
		reportGroup.GET("/monthly-sales", r.reportHandler.MonthlySales)
		reportGroup.GET("/monthly-sales/:year/:month", r.reportHandler.MonthlyDrilldown)
		reportGroup.GET("/price-per-condition", r.reportHandler.PricePerCondition)
	}

	// User administration routes
	userGroup := e.Group("/users", auth.Authenticate)
	{
		userGroup.POST("", r.authHandler.RegisterUser, auth.Require(permission.OpRegisterUser))
		userGroup.PATCH("/:username/role", r.authHandler.ChangeUserRole, auth.Require(permission.OpChangeUserRole))
	}
}
