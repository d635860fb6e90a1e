// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	ValidationHandler *handler.ValidationHandler
	CollectionHandler *handler.CollectionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	validationHandler *handler.ValidationHandler
	collectionHandler *handler.CollectionHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		userHandler:       params.UserHandler,
		validationHandler: params.ValidationHandler,
		collectionHandler: params.CollectionHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/token", r.authHandler.CurrentUser, r.authMiddleware.Authenticate)
		authGroup.GET("/validateToken", r.authHandler.ValidateToken, r.authMiddleware.RequireToken)
		authGroup.POST("/securityQuestion", r.authHandler.SecurityQuestion)
		authGroup.POST("/checkSecurityAnswer", r.authHandler.CheckSecurityAnswer)
	}

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.List)
		userGroup.GET("/byID", r.userHandler.ByID)
		userGroup.POST("/query", r.userHandler.Query)
		userGroup.GET("/roleByID", r.userHandler.RoleByID)
		userGroup.GET("/researchInterestByID", r.userHandler.ResearchInterestByID)
		userGroup.PATCH("/:id", r.userHandler.Update)
		userGroup.PATCH("/:id/password", r.userHandler.UpdatePassword)
		userGroup.POST("/delete", r.userHandler.Delete)
	}

	// Live uniqueness probes for the registration form, no auth required
	validationGroup := e.Group("/validation")
	{
		validationGroup.GET("/uniqueUsername", r.validationHandler.UniqueUsername)
		validationGroup.GET("/uniqueEmail", r.validationHandler.UniqueEmail)
	}

	// Static catalogs for registration forms
	collectionGroup := e.Group("/collection")
	{
		collectionGroup.GET("/securityQuestions", r.collectionHandler.SecurityQuestions)
		collectionGroup.GET("/researchInterests", r.collectionHandler.ResearchInterests)
	}
}
