package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/MEETT007/Shoe-App-Backend/controllers/product"
)

// SetupProductRoutes registers the public catalog endpoints. /api/search is
// the same query engine as the product listing.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
	}

	api.GET("/search", productcontroller.GetProducts(db))
}
