// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"homefinder/internal/delivery/http/middleware"
	"homefinder/internal/delivery/http/router/handler"
	"homefinder/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	PropertyHandler     *handler.PropertyHandler
	InterestHandler     *handler.InterestHandler
	NotificationHandler *handler.NotificationHandler
	FavoriteHandler     *handler.FavoriteHandler
	FeedbackHandler     *handler.FeedbackHandler
	StatsHandler        *handler.StatsHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	propertyHandler     *handler.PropertyHandler
	interestHandler     *handler.InterestHandler
	notificationHandler *handler.NotificationHandler
	favoriteHandler     *handler.FavoriteHandler
	feedbackHandler     *handler.FeedbackHandler
	statsHandler        *handler.StatsHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		propertyHandler:     params.PropertyHandler,
		interestHandler:     params.InterestHandler,
		notificationHandler: params.NotificationHandler,
		favoriteHandler:     params.FavoriteHandler,
		feedbackHandler:     params.FeedbackHandler,
		statsHandler:        params.StatsHandler,
		authMiddleware:      params.AuthMiddleware,
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
		authGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
	}

	// Listing routes; search and lookup are public, mutations are owner-only
	propertyGroup := e.Group("/properties")
	{
		propertyGroup.GET("", r.propertyHandler.Search)
		propertyGroup.GET("/owner/my-properties", r.propertyHandler.MyProperties,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleOwner))
		propertyGroup.GET("/:id", r.propertyHandler.GetByID)
		propertyGroup.POST("", r.propertyHandler.Create,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleOwner))
		propertyGroup.PUT("/:id", r.propertyHandler.Update,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleOwner))
		propertyGroup.DELETE("/:id", r.propertyHandler.Delete,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleOwner))
	}

	// Interest routes
	interestGroup := e.Group("/interests")
	interestGroup.Use(r.authMiddleware.Authenticate)
	{
		interestGroup.POST("", r.interestHandler.Submit, r.authMiddleware.RequireRole(entity.RoleTenant))
		interestGroup.GET("/my-interests", r.interestHandler.MyInterests, r.authMiddleware.RequireRole(entity.RoleTenant))
		interestGroup.GET("/received", r.interestHandler.Received, r.authMiddleware.RequireRole(entity.RoleOwner))
		interestGroup.PUT("/:id", r.interestHandler.Respond, r.authMiddleware.RequireRole(entity.RoleOwner))
	}

	// Notification feed routes
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.List)
		notificationGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationGroup.PUT("/read-all", r.notificationHandler.MarkAllRead)
		notificationGroup.PUT("/:id/read", r.notificationHandler.MarkRead)
		notificationGroup.DELETE("/:id", r.notificationHandler.Delete)
	}

	// Bookmark routes
	favoriteGroup := e.Group("/favorites")
	favoriteGroup.Use(r.authMiddleware.Authenticate)
	favoriteGroup.Use(r.authMiddleware.RequireRole(entity.RoleTenant))
	{
		favoriteGroup.POST("/:propertyId", r.favoriteHandler.Add)
		favoriteGroup.GET("", r.favoriteHandler.List)
		favoriteGroup.DELETE("/:propertyId", r.favoriteHandler.Remove)
	}

	// Contact form; submission and listing are public
	feedbackGroup := e.Group("/feedback")
	{
		feedbackGroup.POST("", r.feedbackHandler.Submit)
		feedbackGroup.GET("", r.feedbackHandler.List)
	}

	// Dashboard statistics
	statsGroup := e.Group("/stats")
	statsGroup.Use(r.authMiddleware.Authenticate)
	{
		statsGroup.GET("/dashboard", r.statsHandler.Dashboard)
	}
}
