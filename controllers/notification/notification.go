package notificationControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MEETT007/Shoe-App-Backend/apperr"
	"github.com/MEETT007/Shoe-App-Backend/middleware"
	"github.com/MEETT007/Shoe-App-Backend/models"
	"github.com/MEETT007/Shoe-App-Backend/utils"
)

// Notify records a notification for a user. Called by other engines, not an
// HTTP surface.
func Notify(db *gorm.DB, userID uint, title, message string) error {
	notification := models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	}
	return db.Create(&notification).Error
}

// GET /api/notifications
func GetNotifications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		var notifications []models.Notification
		if err := db.Where("user_id = ?", userID).
			Order("created_at DESC").Find(&notifications).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}
		utils.Success(c, http.StatusOK, gin.H{
			"results": len(notifications),
			"data":    gin.H{"notifications": notifications},
		})
	}
}

// PUT /api/notifications/read/:id
func MarkAsRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			utils.Fail(c, apperr.BadRequest("Invalid notification ID"))
			return
		}

		var notification models.Notification
		if err := db.Where("id = ? AND user_id = ?", uint(id), userID).
			First(&notification).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, apperr.NotFound("Notification not found"))
			} else {
				utils.Fail(c, apperr.Internal(err))
			}
			return
		}

		notification.IsRead = true
		if err := db.Model(&notification).Update("is_read", true).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"notification": notification}})
	}
}

// DELETE /api/notifications/clear
func ClearNotifications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		if err := db.Where("user_id = ?", userID).
			Delete(&models.Notification{}).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}
		c.Status(http.StatusNoContent)
	}
}
