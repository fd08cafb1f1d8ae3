// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"pond/internal/delivery/http/middleware"
	"pond/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	FishHandler    *handler.FishHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	fishHandler    *handler.FishHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		fishHandler:    params.FishHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/fish", r.fishHandler.List)
		apiGroup.GET("/fish/:id", r.fishHandler.Get)
		apiGroup.POST("/vote", r.fishHandler.Vote)
		apiGroup.POST("/report", r.fishHandler.Report)
	}

	// Kept at the top level for compatibility with existing clients.
	e.POST("/uploadfish", r.fishHandler.Upload, r.authMiddleware.UploadGuard())
}
