// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"safezone/config"
	"safezone/internal/delivery/api/middleware"
	"safezone/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IncidentHandler *handler.IncidentHandler
	ProfileHandler  *handler.ProfileHandler
	AlertHandler    *handler.AlertHandler
	DeviceHandler   *handler.DeviceHandler
	SafeZoneHandler *handler.SafeZoneHandler
	SessionHandler  *handler.SessionHandler
	TestHandler     *handler.TestHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	incidentHandler *handler.IncidentHandler
	profileHandler  *handler.ProfileHandler
	alertHandler    *handler.AlertHandler
	deviceHandler   *handler.DeviceHandler
	safeZoneHandler *handler.SafeZoneHandler
	sessionHandler  *handler.SessionHandler
	testHandler     *handler.TestHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		incidentHandler: params.IncidentHandler,
		profileHandler:  params.ProfileHandler,
		alertHandler:    params.AlertHandler,
		deviceHandler:   params.DeviceHandler,
		safeZoneHandler: params.SafeZoneHandler,
		sessionHandler:  params.SessionHandler,
		testHandler:     params.TestHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	apiV1.POST("/sessions", r.sessionHandler.CreateSession)

	// Incident routes; reads are public, reports may be anonymous
	incidentsGroup := apiV1.Group("/incidents")
	{
		incidentsGroup.POST("", r.incidentHandler.CreateIncident, r.authMiddleware.Identify)
		incidentsGroup.GET("", r.incidentHandler.ListIncidents)
		incidentsGroup.GET("/nearby", r.incidentHandler.FindNearby)
		incidentsGroup.GET("/:id", r.incidentHandler.GetIncident)
		incidentsGroup.GET("/:id/notifications", r.incidentHandler.GetNotificationSummary)
		incidentsGroup.POST("/:id/confirm", r.incidentHandler.ConfirmIncident, r.authMiddleware.Authenticate)
	}

	apiV1.GET("/alerts", r.alertHandler.ListAlerts)
	apiV1.GET("/leaderboard", r.profileHandler.Leaderboard)

	// Everything below acts on the calling device
	profilesGroup := apiV1.Group("/profiles/me", r.authMiddleware.Authenticate)
	{
		profilesGroup.GET("", r.profileHandler.GetMyProfile)
		profilesGroup.GET("/badges", r.profileHandler.GetMyBadges)
		profilesGroup.GET("/incidents", r.profileHandler.ListMyIncidents)
	}

	devicesGroup := apiV1.Group("/devices", r.authMiddleware.Authenticate)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("/me", r.deviceHandler.GetMyDevice)
		devicesGroup.PUT("/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("", r.deviceHandler.DeactivateDevice)
	}

	safeZonesGroup := apiV1.Group("/safezones", r.authMiddleware.Authenticate)
	{
		safeZonesGroup.POST("", r.safeZoneHandler.CreateZone)
		safeZonesGroup.GET("", r.safeZoneHandler.ListZones)
		safeZonesGroup.PUT("/:id", r.safeZoneHandler.UpdateZone)
		safeZonesGroup.PATCH("/:id/active", r.safeZoneHandler.SetZoneActive)
		safeZonesGroup.DELETE("/:id", r.safeZoneHandler.DeleteZone)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate)
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
