package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MEETT007/Shoe-App-Backend/apperr"
	"github.com/MEETT007/Shoe-App-Backend/models"
	"github.com/MEETT007/Shoe-App-Backend/store"
	"github.com/MEETT007/Shoe-App-Backend/utils"
)

// GetProducts lists active products with filtering, sorting and pagination.
// Serves both GET /api/products and GET /api/search.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		params, err := ParseListParams(c.Request.URL.Query())
		if err != nil {
			utils.Fail(c, err)
			return
		}

		var products []models.Product
		if err := params.Apply(store.Products(db)).Find(&products).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}

		utils.Success(c, http.StatusOK, gin.H{
			"results": len(products),
			"data":    gin.H{"products": products},
		})
	}
}

// GetProductByID returns a single active product. Accepts a numeric id or a
// slug in the path parameter. Soft-deleted products are not found.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		param := c.Param("id")

		var product *models.Product
		var err error
		if id, convErr := strconv.ParseUint(param, 10, 64); convErr == nil {
			product, err = store.FindProductByID(db, uint(id))
		} else {
			product, err = store.FindProductBySlug(db, param)
		}
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, apperr.NotFound("Product not found"))
			} else {
				utils.Fail(c, apperr.Internal(err))
			}
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"product": product}})
	}
}
