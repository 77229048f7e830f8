package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/MEETT007/Shoe-App-Backend/controllers/order"
	"github.com/MEETT007/Shoe-App-Backend/middleware"
)

// SetupOrderRoutes registers the /api/orders/* endpoints. JWT-protected;
// listing all orders and overwriting status additionally require admin.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.POST("/checkout", orderControllers.CreateOrderHandler(db))
		orders.GET("/my", orderControllers.GetMyOrdersHandler(db))
		orders.GET("/:id", orderControllers.GetOrderHandler(db))
		orders.PUT("/:id/pay", orderControllers.MarkOrderPaidHandler(db))

		orders.GET("", middleware.RequireAdmin, orderControllers.GetAllOrdersHandler(db))
		orders.PUT("/:id/status", middleware.RequireAdmin, orderControllers.UpdateOrderStatusHandler(db))
	}
}
