package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/MEETT007/Shoe-App-Backend/controllers/cart"
	"github.com/MEETT007/Shoe-App-Backend/middleware"
)

// SetupCartRoutes registers the /api/cart/* endpoints. JWT-protected.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cart := api.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("", cartControllers.GetCartHandler(db))
		cart.POST("/add", cartControllers.AddToCartHandler(db))
		cart.PUT("/update", cartControllers.UpdateCartItemHandler(db))
		cart.DELETE("/remove/:itemId", cartControllers.RemoveFromCartHandler(db))
		cart.DELETE("", cartControllers.ClearCartHandler(db))
	}
}
