// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/hatzenkracher/ipurchase/internal/delivery/http/middleware"
	"github.com/hatzenkracher/ipurchase/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler            *handler.UserHandler
	DeviceHandler          *handler.DeviceHandler
	CompanySettingsHandler *handler.CompanySettingsHandler
	AuthMiddleware         *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler            *handler.UserHandler
	deviceHandler          *handler.DeviceHandler
	companySettingsHandler *handler.CompanySettingsHandler
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:            params.UserHandler,
		deviceHandler:          params.DeviceHandler,
		companySettingsHandler: params.CompanySettingsHandler,
		authMiddleware:         params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	// Inventory routes, all scoped to the authenticated user
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.GET("", r.deviceHandler.List)
		deviceGroup.POST("", r.deviceHandler.Create)
		deviceGroup.GET("/stats", r.deviceHandler.Stats)
		deviceGroup.GET("/:id", r.deviceHandler.Get)
		deviceGroup.PATCH("/:id", r.deviceHandler.Update)
		deviceGroup.PUT("/:id/status", r.deviceHandler.UpdateStatus)
		deviceGroup.DELETE("/:id", r.deviceHandler.Delete)
		deviceGroup.GET("/:id/label.png", r.deviceHandler.Label)
	}

	// Company profile
	settingsGroup := e.Group("/company-settings")
	settingsGroup.Use(r.authMiddleware.Authenticate)
	{
		settingsGroup.GET("", r.companySettingsHandler.Get)
		settingsGroup.PUT("", r.companySettingsHandler.Save)
	}
}
