package ecommerce_routes

import (
	"github.com/halfsy-shop/halfsy-backend/controllers/ecommerce/user_controller"
	"github.com/halfsy-shop/halfsy-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes wires account and per-user state routes.
func SetupUserRoutes(router *gin.RouterGroup) {
	// Public: registration and login
	users := router.Group("/users")
	{
		users.POST("/register", user_controller.Register)
		users.POST("/login", user_controller.Login)
		users.POST("/oauth-login", user_controller.OAuthLogin)
	}

	// Authenticated: profile, favourites, bag
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/me", user_controller.GetMe)

		user.GET("/favourites", user_controller.GetFavourites)
		user.POST("/favourites", user_controller.AddFavourite)
		user.DELETE("/favourites", user_controller.RemoveFavourite)

		user.GET("/bag", user_controller.GetBag)
		user.POST("/bag", user_controller.AddToBag)
		user.DELETE("/bag", user_controller.RemoveFromBag)
		user.PUT("/bag", user_controller.SyncBag)
	}
}
