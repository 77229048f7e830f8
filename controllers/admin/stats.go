package adminController

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MEETT007/Shoe-App-Backend/apperr"
	"github.com/MEETT007/Shoe-App-Backend/middleware"
	"github.com/MEETT007/Shoe-App-Backend/models"
	"github.com/MEETT007/Shoe-App-Backend/store"
	"github.com/MEETT007/Shoe-App-Backend/utils"
)

type SalesPoint struct {
	Day        string  `json:"day"`
	TotalSales float64 `json:"total_sales"`
}

type BestSeller struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	TotalSold int     `json:"total_sold"`
	Revenue   float64 `json:"revenue"`
}

// GetDashboardStats aggregates the admin dashboard: entity counts, paid
// revenue, a 30-day sales chart, top sellers and the most recent orders.
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var usersCount, productsCount, ordersCount int64
		if err := db.Model(&models.User{}).Count(&usersCount).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}
		if err := store.Products(db).Count(&productsCount).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}
		if err := db.Model(&models.Order{}).Count(&ordersCount).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}

		// Only paid orders count toward revenue
		var revenue float64
		if err := db.Model(&models.Order{}).Where("is_paid = ?", true).
			Select("COALESCE(SUM(total_price), 0)").Scan(&revenue).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}

		thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
		var salesChart []SalesPoint
		if err := db.Model(&models.Order{}).
			Select("TO_CHAR(created_at, 'YYYY-MM-DD') AS day, SUM(total_price) AS total_sales").
			Where("created_at >= ? AND is_paid = ?", thirtyDaysAgo, true).
			Group("day").Order("day ASC").
			Scan(&salesChart).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}

		var bestSellers []BestSeller
		if err := db.Model(&models.OrderItem{}).
			Select("product_id, MIN(name) AS name, SUM(quantity) AS total_sold, SUM(price * quantity) AS revenue").
			Group("product_id").Order("total_sold DESC").Limit(5).
			Scan(&bestSellers).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}

		var recentOrders []models.Order
		if err := db.Preload("User").Order("created_at DESC").Limit(5).
			Find(&recentOrders).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}

		utils.Success(c, http.StatusOK, gin.H{
			"data": gin.H{
				"counts": gin.H{
					"users":    usersCount,
					"products": productsCount,
					"orders":   ordersCount,
					"revenue":  revenue,
				},
				"sales_chart":   salesChart,
				"best_sellers":  bestSellers,
				"recent_orders": recentOrders,
			},
		})
	}
}

// GET /api/admin/me
func GetAdminProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, apperr.NotFound("User not found"))
			} else {
				utils.Fail(c, apperr.Internal(err))
			}
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"user": user}})
	}
}
