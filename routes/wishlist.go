package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	wishlistControllers "github.com/MEETT007/Shoe-App-Backend/controllers/wishlist"
	"github.com/MEETT007/Shoe-App-Backend/middleware"
)

// SetupWishlistRoutes registers the /api/wishlist/* endpoints. JWT-protected.
func SetupWishlistRoutes(api *gin.RouterGroup, db *gorm.DB) {
	wishlist := api.Group("/wishlist")
	wishlist.Use(middleware.ValidateToken)
	{
		wishlist.GET("", wishlistControllers.GetWishlistHandler(db))
		wishlist.POST("/:productId", wishlistControllers.AddToWishlistHandler(db))
		wishlist.DELETE("/:productId", wishlistControllers.RemoveFromWishlistHandler(db))
	}
}
