// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bookmarks/internal/delivery/api/middleware"
	"bookmarks/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	BookmarkHandler *handler.BookmarkHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// Router holds all the handlers that need to be registered.
type Router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	bookmarkHandler *handler.BookmarkHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *Router {
	return &Router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		bookmarkHandler: params.BookmarkHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/signin", r.authHandler.Signin)
	}

	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetMe)
		userGroup.PATCH("", r.userHandler.EditUser)
	}

	bookmarksGroup := e.Group("/bookmarks")
	bookmarksGroup.Use(r.authMiddleware.Authenticate)
	{
		bookmarksGroup.POST("", r.bookmarkHandler.CreateBookmark)
		bookmarksGroup.GET("", r.bookmarkHandler.ListBookmarks)
		bookmarksGroup.GET("/:id", r.bookmarkHandler.GetBookmark)
		bookmarksGroup.PATCH("/:id", r.bookmarkHandler.EditBookmark)
		bookmarksGroup.DELETE("/:id", r.bookmarkHandler.DeleteBookmark)
	}
}
