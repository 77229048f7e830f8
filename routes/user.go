package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	notificationControllers "github.com/MEETT007/Shoe-App-Backend/controllers/notification"
	uploadControllers "github.com/MEETT007/Shoe-App-Backend/controllers/upload"
	userControllers "github.com/MEETT007/Shoe-App-Backend/controllers/user"
	"github.com/MEETT007/Shoe-App-Backend/middleware"
)

// SetupUserRoutes registers profile, notification and upload endpoints.
// All JWT-protected.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	profile := api.Group("/profile")
	profile.Use(middleware.ValidateToken)
	{
		profile.GET("", userControllers.GetProfile(db))
		profile.PUT("", userControllers.UpdateProfile(db))
		profile.PUT("/password", userControllers.UpdatePassword(db))
	}

	notifications := api.Group("/notifications")
	notifications.Use(middleware.ValidateToken)
	{
		notifications.GET("", notificationControllers.GetNotifications(db))
		notifications.PUT("/read/:id", notificationControllers.MarkAsRead(db))
		notifications.DELETE("/clear", notificationControllers.ClearNotifications(db))
	}

	upload := api.Group("/upload")
	upload.Use(middleware.ValidateToken)
	{
		upload.POST("", uploadControllers.UploadImage)
		upload.POST("/multiple", uploadControllers.UploadMultipleImages)
	}
}
