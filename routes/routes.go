package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires every route group under
// the /api prefix.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	SetupAuthRoutes(api, db)
	SetupProductRoutes(api, db)
	SetupCartRoutes(api, db)
	SetupOrderRoutes(api, db)
	SetupWishlistRoutes(api, db)
	SetupUserRoutes(api, db)
	SetupAdminRoutes(api, db)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "success",
			"message":   "Server is healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
}
