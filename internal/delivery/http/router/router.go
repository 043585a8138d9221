// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"artmarket/internal/delivery/http/middleware"
	"artmarket/internal/delivery/http/router/handler"
	"artmarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ArtworkHandler *handler.ArtworkHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	artworkHandler *handler.ArtworkHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		artworkHandler: params.ArtworkHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes. The root-level paths are the documented client contract;
	// the /auth group serves the same handlers for namespaced clients.
	e.POST("/register", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Artwork routes. Browsing is public, mutations sit behind the gate.
	artworkGroup := e.Group("/artworks")
	{
		artworkGroup.GET("", r.artworkHandler.ListArtworks)
		artworkGroup.GET("/category/:category", r.artworkHandler.ListArtworksByCategory)
		artworkGroup.GET("/:id", r.artworkHandler.GetArtwork)

		artworkGroup.POST("", r.artworkHandler.CreateArtwork,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireAccountType(entity.AccountTypeSeller),
		)
		artworkGroup.PUT("/:id", r.artworkHandler.UpdateArtwork, r.authMiddleware.Authenticate)
		artworkGroup.DELETE("/:id", r.artworkHandler.DeleteArtwork, r.authMiddleware.Authenticate)
		artworkGroup.POST("/:id/purchase", r.artworkHandler.PurchaseArtwork, r.authMiddleware.Authenticate)
	}

	// Account routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.POST("/profile", r.userHandler.UpdateProfile)
		userGroup.POST("/profile/image", r.userHandler.UploadProfileImage)
		userGroup.GET("/artworks", r.userHandler.GetOwnArtworks)
		userGroup.GET("/wishlist", r.userHandler.GetWishlist)
		userGroup.POST("/wishlist/:artworkId", r.userHandler.AddToWishlist)
		userGroup.DELETE("/wishlist/:artworkId", r.userHandler.RemoveFromWishlist)
		userGroup.GET("/purchases", r.userHandler.GetPurchases)
	}
}
