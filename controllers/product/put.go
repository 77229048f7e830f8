package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MEETT007/Shoe-App-Backend/apperr"
	"github.com/MEETT007/Shoe-App-Backend/store"
	"github.com/MEETT007/Shoe-App-Backend/utils"
)

// UpdateProduct overwrites an active product's fields. Admin only.
// Soft-deleted products are not reachable for update.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			utils.Fail(c, apperr.BadRequest("Invalid product ID"))
			return
		}

		product, err := store.FindProductByID(db, uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, apperr.NotFound("Product not found"))
			} else {
				utils.Fail(c, apperr.Internal(err))
			}
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, apperr.BadRequest("Invalid input: "+err.Error()))
			return
		}
		if input.Gender != "" && !validGender(input.Gender) {
			utils.Fail(c, apperr.BadRequest("Gender must be men, women or unisex"))
			return
		}
		if input.DiscountPrice > 0 && input.DiscountPrice >= input.Price {
			utils.Fail(c, apperr.BadRequest("Discount price must be below the list price"))
			return
		}

		product.Name = input.Name
		product.Brand = input.Brand
		product.Category = input.Category
		product.Description = input.Description
		product.Price = input.Price
		product.DiscountPrice = input.DiscountPrice
		product.Images = input.Images
		product.Sizes = input.Sizes
		product.Colors = input.Colors
		product.Gender = strings.ToLower(input.Gender)
		product.IsBestSeller = input.IsBestSeller
		product.IsNewArrival = input.IsNewArrival
		product.IsOnSale = input.IsOnSale

		if err := db.Save(product).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"product": product}})
	}
}
