// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"classifieds/config"
	"classifieds/internal/delivery/api/middleware"
	"classifieds/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthHandler    *handler.AuthHandler
	AdHandler      *handler.AdHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	authHandler    *handler.AuthHandler
	adHandler      *handler.AdHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		authHandler:    params.AuthHandler,
		adHandler:      params.AdHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	if m := r.config.Metrics; m != nil && m.Enabled {
		e.GET(m.Path, echo.WrapHandler(promhttp.Handler()))
	}

	apiV1 := e.Group("/api/v1")
	requireAuth := r.authMiddleware.Authenticate

	// Users
	apiV1.POST("/user-create/", r.userHandler.CreateUser)
	apiV1.GET("/user-info/:id", r.userHandler.GetUser)
	apiV1.GET("/user-info/:id/del", r.userHandler.DeleteUser)
	apiV1.GET("/user-info/:id/ads", r.userHandler.ListUserAds)

	// Auth
	apiV1.POST("/auth/login", r.authHandler.Login)
	apiV1.POST("/auth/logout", r.authHandler.Logout, requireAuth)

	// Ads
	apiV1.GET("/ad-info/:id", r.adHandler.GetAd)
	apiV1.GET("/ad-info/:id/qr", r.adHandler.AdQRCode)
	apiV1.POST("/ad-create/", r.adHandler.CreateAd, requireAuth)
	apiV1.POST("/ad-info/:id/update/", r.adHandler.UpdateAd, requireAuth)
	apiV1.GET("/ad-info/:id/del", r.adHandler.DeleteAd, requireAuth)
}
