package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MEETT007/Shoe-App-Backend/auth"
	adminController "github.com/MEETT007/Shoe-App-Backend/controllers/admin"
	productcontroller "github.com/MEETT007/Shoe-App-Backend/controllers/product"
	userControllers "github.com/MEETT007/Shoe-App-Backend/controllers/user"
	"github.com/MEETT007/Shoe-App-Backend/middleware"
)

// SetupAdminRoutes registers all /api/admin/* and /api/users/* endpoints.
// Everything except the login requires a valid token with the admin role.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB) {
	admin := api.Group("/admin")
	admin.POST("/login", auth.AdminLogin(db))

	admin.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		admin.GET("/me", adminController.GetAdminProfile(db))
		admin.GET("/stats", adminController.GetDashboardStats(db))

		// ─────────── Product Management ───────────
		products := admin.Group("/products")
		{
			products.POST("", productcontroller.CreateProduct(db))
			products.PUT("/:id", productcontroller.UpdateProduct(db))
			products.DELETE("/:id", productcontroller.DeleteProduct(db))
			products.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
			products.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
		}
	}

	users := api.Group("/users")
	users.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		users.GET("", userControllers.GetAllUsers(db))
		users.DELETE("/:id", userControllers.DeleteUser(db))
	}
}
