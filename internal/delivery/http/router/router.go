// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"happyshop/internal/delivery/http/middleware"
	"happyshop/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	CatalogHandler      *handler.CatalogHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	catalogHandler      *handler.CatalogHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		catalogHandler:      params.CatalogHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/password", r.authHandler.ChangePassword)
	}

	// Catalog routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
	}
}
