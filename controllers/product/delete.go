package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MEETT007/Shoe-App-Backend/apperr"
	"github.com/MEETT007/Shoe-App-Backend/store"
	"github.com/MEETT007/Shoe-App-Backend/utils"
)

// DeleteProduct soft-deletes a product. Admin only. The row stays in storage
// so order history and stale cart lines remain resolvable; every catalog read
// excludes it from now on.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			utils.Fail(c, apperr.BadRequest("Invalid product ID"))
			return
		}

		if err := store.SoftDeleteProduct(db, uint(id)); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, apperr.NotFound("Product not found"))
			} else {
				utils.Fail(c, apperr.Internal(err))
			}
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
