// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"moneta/internal/delivery/http/middleware"
	"moneta/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ApiKeyHandler  *handler.ApiKeyHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	apiKeyHandler  *handler.ApiKeyHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		apiKeyHandler:  params.ApiKeyHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session lifecycle routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/logout-all", r.authHandler.LogoutAll, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// API key management routes, all behind authentication
	keyGroup := e.Group("/auth/api-keys")
	keyGroup.Use(r.authMiddleware.Authenticate)
	{
		keyGroup.POST("", r.apiKeyHandler.Create)
		keyGroup.GET("", r.apiKeyHandler.List)
		keyGroup.POST("/:id/revoke", r.apiKeyHandler.Revoke)
	}
}
